package filestorage

import (
	"context"
	"mime/multipart"
)

// FileStorage abstracts where uploaded resource files land. Implementations
// return an accessible reference (URL or path) that is stored on the
// resource record as its file field.
type FileStorage interface {
	// SaveFile stores the uploaded file under subPath and returns the
	// accessible reference.
	SaveFile(ctx context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file. Deleting a missing
	// file is not an error.
	DeleteFile(ctx context.Context, ref string) error
}
