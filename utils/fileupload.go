package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// MaxFileSize is 10MB in bytes
	MaxFileSize = 10 * 1024 * 1024
)

// AllowedDocumentFormats lists the file extensions accepted for compliance
// documents and payment proofs
var AllowedDocumentFormats = []string{".pdf", ".png", ".jpg", ".jpeg"}

// DocumentCategories lists the valid document categories. The category is
// used as the storage key prefix.
var DocumentCategories = []string{"coc", "exa", "proof", "contract", "customs"}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateDocumentFile validates the uploaded file format and size
func ValidateDocumentFile(fileHeader *multipart.FileHeader) error {
	// Check file size
	if fileHeader.Size > MaxFileSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range AllowedDocumentFormats {
		if ext == allowed {
			return nil
		}
	}

	return &FileUploadError{
		Code:    "INVALID_FILE_FORMAT",
		Message: fmt.Sprintf("Only %s files are allowed", strings.Join(AllowedDocumentFormats, ", ")),
	}
}

// ValidateDocumentCategory checks that the category names a known document
// type
func ValidateDocumentCategory(category string) error {
	for _, allowed := range DocumentCategories {
		if category == allowed {
			return nil
		}
	}

	return &FileUploadError{
		Code:    "INVALID_CATEGORY",
		Message: fmt.Sprintf("Category must be one of %s", strings.Join(DocumentCategories, ", ")),
	}
}
