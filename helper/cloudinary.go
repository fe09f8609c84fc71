package helper

import (
	"context"
	"log"
	"mime/multipart"
	"theatre_manager/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

type UploadedImage struct {
	Url      string `json:"url"`
	PublicId string `json:"publicId"`
}

func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, file *multipart.FileHeader, folder string) (*UploadedImage, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, err
	}

	return &UploadedImage{Url: resp.SecureURL, PublicId: resp.PublicID}, nil
}

func DestroyImage(ctx context.Context, cld *cloudinary.Cloudinary, publicId string) {
	if publicId == "" {
		return
	}
	if _, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicId}); err != nil {
		log.Printf("failed to destroy cloudinary asset %s: %v", publicId, err)
	}
}
