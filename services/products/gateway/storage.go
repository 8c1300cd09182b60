package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/xsnapster/backend/internal/pkg/httpclient"
)

// StorageGW uploads product images to the object-storage service
type StorageGW struct {
	client *httpclient.Client
}

// NewStorageGW creates a new storage gateway
func NewStorageGW(serviceURL string, timeout time.Duration) *StorageGW {
	return &StorageGW{
		client: httpclient.NewClient(serviceURL, timeout),
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// UploadImage streams the multipart file to the storage service and returns
// the public URL it was stored under.
func (g *StorageGW) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", file.Filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return "", fmt.Errorf("failed to read upload %s: %w", file.Filename, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var result uploadResponse
	if err := g.client.PostMultipart(ctx, "/v1/images", writer.FormDataContentType(), &body, &result); err != nil {
		return "", fmt.Errorf("storage service: %w", err)
	}

	return result.URL, nil
}
