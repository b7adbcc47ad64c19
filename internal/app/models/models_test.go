package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResourceType(t *testing.T) {
	for _, value := range ResourceTypes() {
		parsed, ok := ParseResourceType(string(value))
		assert.True(t, ok, "expected %q to parse", value)
		assert.Equal(t, value, parsed)
	}

	_, ok := ParseResourceType("  pdf ")
	assert.False(t, ok, "whitespace variants are not normalized")

	_, ok = ParseResourceType("PDF")
	assert.False(t, ok, "parsing is case sensitive")

	_, ok = ParseResourceType("spreadsheet")
	assert.False(t, ok)

	_, ok = ParseResourceType("")
	assert.False(t, ok)
}

func TestParseResourceCategory(t *testing.T) {
	for _, value := range ResourceCategories() {
		parsed, ok := ParseResourceCategory(string(value))
		assert.True(t, ok, "expected %q to parse", value)
		assert.Equal(t, value, parsed)
	}

	// The multi-word value is stored with the space.
	parsed, ok := ParseResourceCategory("question paper")
	assert.True(t, ok)
	assert.Equal(t, CategoryQuestionPaper, parsed)

	_, ok = ParseResourceCategory("question_paper")
	assert.False(t, ok)

	_, ok = ParseResourceCategory("exam")
	assert.False(t, ok)
}

func TestParseSemester(t *testing.T) {
	for _, value := range Semesters() {
		parsed, ok := ParseSemester(string(value))
		assert.True(t, ok, "expected %q to parse", value)
		assert.Equal(t, value, parsed)
	}

	assert.Len(t, Semesters(), 8)

	for _, bad := range []string{"0", "9", "first", ""} {
		_, ok := ParseSemester(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestAttachmentRefs(t *testing.T) {
	file := Attachment{Kind: AttachmentFile, Ref: "uploads/a.pdf"}
	assert.NotNil(t, file.FileRef())
	assert.Equal(t, "uploads/a.pdf", *file.FileRef())
	assert.Nil(t, file.LinkRef())

	link := Attachment{Kind: AttachmentLink, Ref: "https://example.com/notes"}
	assert.Nil(t, link.FileRef())
	assert.NotNil(t, link.LinkRef())
	assert.Equal(t, "https://example.com/notes", *link.LinkRef())

	none := Attachment{}
	assert.Nil(t, none.FileRef())
	assert.Nil(t, none.LinkRef())
}
