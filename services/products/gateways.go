package products

import (
	"context"
	"mime/multipart"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/xsnapster/backend/services/products StorageGW

// StorageGW uploads product images to the external object-storage service
// and returns their public URLs.
type StorageGW interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}
