package filestorage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadedFileHeader builds a real multipart.FileHeader by round-tripping a
// request through the multipart parser.
func uploadedFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveFile_StoresUnderSubPath(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	header := uploadedFileHeader(t, "notes.pdf", "pdf-bytes")
	ref, err := storage.SaveFile(context.Background(), header, "resources")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "resources/"), "ref %q should live under the subpath", ref)
	assert.True(t, strings.HasSuffix(ref, ".pdf"), "ref %q should keep the original extension", ref)
	assert.NotContains(t, ref, "notes", "stored names must not reuse the client-provided filename")

	stored, err := os.ReadFile(filepath.Join(storage.basePath, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(stored))
}

func TestSaveFile_PrependsBaseURL(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	require.NoError(t, err)

	header := uploadedFileHeader(t, "notes.pdf", "x")
	ref, err := storage.SaveFile(context.Background(), header, "resources")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "http://localhost:8080/uploads/resources/"), "got %q", ref)
}

func TestDeleteFile_RemovesStoredFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	header := uploadedFileHeader(t, "notes.pdf", "x")
	ref, err := storage.SaveFile(context.Background(), header, "resources")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(context.Background(), ref))
	_, statErr := os.Stat(filepath.Join(storage.basePath, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteFile_MissingFileIsNotAnError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile(context.Background(), "resources/never-existed.pdf"))
	assert.NoError(t, storage.DeleteFile(context.Background(), ""))
}

func TestDeleteFile_RejectsTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.Error(t, storage.DeleteFile(context.Background(), "../outside.txt"))
	assert.Error(t, storage.DeleteFile(context.Background(), "/etc/passwd"))
}
