package services

import (
	"fmt"
	"mime/multipart"

	"github.com/cornbelt-mill/cornbelt-site-api/utils"
)

// ImageService stores uploaded site imagery (hero slides, testimonial
// portraits, product photos) and hands back a browser-facing URL.
type ImageService interface {
	// UploadImage validates and stores an image file, returning its public URL
	UploadImage(fileHeader *multipart.FileHeader) (string, error)

	// DeleteImage removes a previously stored image
	DeleteImage(key string) error
}

// S3ImageService implements ImageService using AWS S3 for storage
type S3ImageService struct {
	s3Service S3Interface
}

// LocalImageService implements ImageService on the local filesystem.
// Used in development when no S3 bucket is configured.
type LocalImageService struct {
	uploadDir string
}

var imageServiceInstance ImageService

// InitImageService initializes the image service with S3 backend
func InitImageService(s3Service S3Interface) ImageService {
	imageServiceInstance = &S3ImageService{
		s3Service: s3Service,
	}
	return imageServiceInstance
}

// InitLocalImageService initializes the image service with local disk storage
func InitLocalImageService(uploadDir string) ImageService {
	imageServiceInstance = &LocalImageService{uploadDir: uploadDir}
	return imageServiceInstance
}

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

// UploadImage validates and uploads an image file to S3
func (s *S3ImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	s3Key, err := s.s3Service.UploadFile(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.s3Service.PublicURL(s3Key), nil
}

// DeleteImage removes an image from S3
func (s *S3ImageService) DeleteImage(key string) error {
	return s.s3Service.DeleteFile(key)
}

// UploadImage validates and saves an image file to the local upload directory
func (s *LocalImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	filename, err := utils.SaveUploadedFile(fileHeader, s.uploadDir)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return utils.GetImageURL(filename), nil
}

// DeleteImage removes a locally stored image
func (s *LocalImageService) DeleteImage(key string) error {
	return utils.DeleteUploadedFile(key, s.uploadDir)
}
