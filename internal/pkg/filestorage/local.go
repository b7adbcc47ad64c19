package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/erenyalcin/campushare/internal/pkg/logger"
)

// LocalStorage saves files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // prepended to returned references when set
}

// NewLocalStorage creates a new LocalStorage instance. basePath is the
// directory on the server; baseURL is optional and, when provided, is
// prepended to returned file references.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveFile stores the uploaded file under a generated unique name inside
// subPath and returns the accessible reference.
func (ls *LocalStorage) SaveFile(_ context.Context, fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	// Unique filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext

	dstPath := filepath.Join(fullDirPath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	ref := path(subPath, uniqueFilename)
	if ls.baseURL != "" {
		ref = strings.TrimRight(ls.baseURL, "/") + "/" + ref
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("ref", ref).Msg("File saved")
	return ref, nil
}

// DeleteFile removes a file from the storage filesystem. Returns nil when
// the file does not exist.
func (ls *LocalStorage) DeleteFile(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	if ls.baseURL != "" {
		ref = strings.TrimPrefix(ref, strings.TrimRight(ls.baseURL, "/")+"/")
	}

	// Refs are relative to the storage root; reject anything that would
	// escape it.
	rel := filepath.Clean(filepath.FromSlash(ref))
	if rel == "." || filepath.IsAbs(rel) || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid file reference: %s", ref)
	}

	physicalPath := filepath.Join(ls.basePath, rel)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

func path(subPath, filename string) string {
	if subPath == "" {
		return filename
	}
	return subPath + "/" + filename
}
