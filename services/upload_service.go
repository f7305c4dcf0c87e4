package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateImage rejects non-image uploads before anything leaves the server.
func ValidateImage(header *multipart.FileHeader) error {
	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return fmt.Errorf("unsupported image type %q", contentType)
	}
	if header.Size > 5<<20 {
		return fmt.Errorf("image exceeds the 5MB limit")
	}
	return nil
}

// UploadImage pushes a multipart file to Cloudinary and returns the secure URL.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, header *multipart.FileHeader, folder string) (string, error) {
	if err := ValidateImage(header); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	resp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}

	return resp.SecureURL, nil
}
