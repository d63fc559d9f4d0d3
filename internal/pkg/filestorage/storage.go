package filestorage

import "mime/multipart"

// FileStorage defines the interface for material file storage. Files are
// written once under a per-user namespaced path and read back for analysis.
type FileStorage interface {
	// SaveFile stores an uploaded file under the given subdirectory and
	// returns the stored relative path.
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// ReadFile returns the contents of a previously stored file.
	ReadFile(storedPath string) ([]byte, error)

	// DeleteFile removes a stored file. Deleting a missing file is not an
	// error.
	DeleteFile(storedPath string) error
}
