package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"alice@example.com", "a.b-c_d@sub.example.org", "x@y.co"}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{"", "alice", "alice@", "@example.com", "alice example@x.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"abc", "alice.smith", "user_1-2", strings.Repeat("a", 30)}
	for _, username := range valid {
		assert.True(t, IsValidUsername(username), "expected %q to be valid", username)
	}

	invalid := []string{"", "ab", strings.Repeat("a", 31), "has space", "emoji🙂"}
	for _, username := range invalid {
		assert.False(t, IsValidUsername(username), "expected %q to be invalid", username)
	}
}

func TestIsValidTitle(t *testing.T) {
	assert.True(t, IsValidTitle("Midterm notes"))
	assert.True(t, IsValidTitle("a"))
	assert.False(t, IsValidTitle(""))
	assert.False(t, IsValidTitle(strings.Repeat("a", TitleMaxLength+1)))
}
