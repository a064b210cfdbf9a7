package uploader

import (
	"context"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	cldUploader "github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(url string) (*cloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		log.Println("Failed to initialize cloudinary client: ", err.Error())
		return nil, err
	}
	return &cloudinaryUploader{
		cld: cld,
	}, nil
}

func (cu *cloudinaryUploader) Upload(ctx context.Context, filePath string) (string, error) {
	resp, err := cu.cld.Upload.Upload(ctx, filePath, cldUploader.UploadParams{
		Folder: "posts",
	})
	if err != nil {
		log.Printf("Failed to upload asset{%v}: %v\n", filePath, err.Error())
		return "", err
	}
	return resp.SecureURL, nil
}
