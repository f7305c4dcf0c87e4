package config

import (
	"fmt"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
)

var Cloudinary *cloudinary.Cloudinary

func InitCloudinary() error {
	url := os.Getenv("CLOUDINARY_URL")
	if url == "" {
		return fmt.Errorf("CLOUDINARY_URL is not set")
	}

	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return fmt.Errorf("failed to init cloudinary: %w", err)
	}

	Cloudinary = cld
	return nil
}
