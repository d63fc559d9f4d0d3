package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
)

// LocalStorage stores files on the local filesystem under a base directory.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile saves an uploaded file to the given subdirectory. The stored name
// is a fresh UUID with the original extension so uploads never collide.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("no file provided")
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

	uniqueFilename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
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

	storedPath := uniqueFilename
	if subPath != "" {
		storedPath = filepath.ToSlash(filepath.Join(subPath, uniqueFilename))
	}

	logger.Info().
		Str("filename", fileHeader.Filename).
		Str("stored_as", storedPath).
		Msg("File saved successfully")
	return storedPath, nil
}

// ReadFile returns the contents of a stored file given its stored path.
func (ls *LocalStorage) ReadFile(storedPath string) ([]byte, error) {
	physical, err := ls.physicalPath(storedPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(physical)
	if err != nil {
		return nil, fmt.Errorf("failed to read stored file %s: %w", storedPath, err)
	}
	return data, nil
}

// DeleteFile removes a stored file. Missing files are treated as already
// deleted.
func (ls *LocalStorage) DeleteFile(storedPath string) error {
	if storedPath == "" {
		return nil
	}

	physical, err := ls.physicalPath(storedPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(physical); os.IsNotExist(err) {
		logger.Warn().Str("path", physical).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physical); err != nil {
		logger.Error().Err(err).Str("path", physical).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physical).Msg("File deleted successfully")
	return nil
}

// physicalPath resolves a stored path below the base directory, rejecting
// traversal outside of it.
func (ls *LocalStorage) physicalPath(storedPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(storedPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid file path: %s", storedPath)
	}
	return filepath.Join(ls.basePath, cleaned), nil
}
