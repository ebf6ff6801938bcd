package services

import (
	"fmt"
	"mime/multipart"

	"github.com/emerald-motors/vehicle-trade-api/utils"
)

// DocumentService handles compliance documents and payment proofs: COC
// certificates, export approvals, customs paperwork and transfer receipts
type DocumentService interface {
	// UploadDocument validates and stores a document, returns the storage key
	UploadDocument(category string, fileHeader *multipart.FileHeader) (string, error)

	// GetDocumentURL generates a URL for accessing a stored document
	GetDocumentURL(key string) (string, error)

	// DeleteDocument removes a document from storage
	DeleteDocument(key string) error
}

// S3DocumentService implements DocumentService using AWS S3 for storage
type S3DocumentService struct {
	s3Service S3Interface
}

var documentServiceInstance DocumentService

// InitDocumentService initializes the document service with S3 backend
func InitDocumentService(s3Service S3Interface) DocumentService {
	documentServiceInstance = &S3DocumentService{
		s3Service: s3Service,
	}
	return documentServiceInstance
}

// GetDocumentService returns the initialized document service instance
func GetDocumentService() DocumentService {
	return documentServiceInstance
}

// SetDocumentService sets the document service instance (primarily for testing)
func SetDocumentService(service DocumentService) {
	documentServiceInstance = service
}

// UploadDocument validates the category and file, then stores the document
func (s *S3DocumentService) UploadDocument(category string, fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateDocumentCategory(category); err != nil {
		return "", err
	}

	if err := utils.ValidateDocumentFile(fileHeader); err != nil {
		return "", err
	}

	key, err := s.s3Service.UploadFile(category, fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return key, nil
}

// GetDocumentURL generates a presigned URL for accessing a document
func (s *S3DocumentService) GetDocumentURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	url, err := s.s3Service.GetPresignedURL(key)
	if err != nil {
		return "", fmt.Errorf("failed to generate document URL: %w", err)
	}

	return url, nil
}

// DeleteDocument deletes a document from S3
func (s *S3DocumentService) DeleteDocument(key string) error {
	if key == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(key); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}
