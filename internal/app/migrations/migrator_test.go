package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readInitMigration(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	return string(content)
}

func TestInitMigration_DeletionPolicyCascades(t *testing.T) {
	schema := readInitMigration(t)

	// Deleting a course removes its subjects; an orphaned nullable FK would
	// leave subjects pointing nowhere in the catalog tree.
	assert.Regexp(t,
		regexp.MustCompile(`course_id\s+BIGINT REFERENCES cource\(id\) ON DELETE CASCADE`),
		schema)
	assert.NotContains(t, schema, "ON DELETE SET NULL")

	// Resources go with any parent they hang off of.
	for _, clause := range []string{
		"REFERENCES cource(id) ON DELETE CASCADE",
		"REFERENCES subject(id) ON DELETE CASCADE",
		"REFERENCES session(id) ON DELETE CASCADE",
		"REFERENCES users(id) ON DELETE CASCADE",
		"REFERENCES resource(id) ON DELETE CASCADE",
		"REFERENCES tag(id) ON DELETE CASCADE",
	} {
		assert.Contains(t, schema, clause)
	}
}

func TestInitMigration_TagNamesUnique(t *testing.T) {
	schema := readInitMigration(t)

	// The resolve-by-name upsert depends on this constraint.
	assert.Regexp(t, regexp.MustCompile(`name\s+VARCHAR\(100\) NOT NULL UNIQUE`), schema)
}
