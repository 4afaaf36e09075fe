// file: internals/helpers/oss/blob_service.go
package helper

import (
	"bytes"
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService is the uniform upload/delete facade controllers talk to.
Uploads return a public URL plus the object key stored alongside it in the
DB so deletes never have to re-derive the key from the URL.
*/
type BlobService interface {
	// UploadImage re-encodes to WebP before uploading.
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
	// UploadRaw uploads the file as-is (PDFs, docs).
	UploadRaw(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey, contentType string, err error)

	DeleteByKey(ctx context.Context, objectKey string) error
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv builds the facade from ENV. prefix is optional
// (e.g. "uploads").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File not found in request")
	}
	src, err := fh.Open()
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Cannot read uploaded file")
	}
	defer src.Close()

	webpData, err := ConvertToWebP(src, fh.Filename)
	if err != nil {
		if strings.Contains(err.Error(), "unsupported image format") {
			return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		}
		return "", "", err
	}

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	key, err := b.svc.UploadBytes(ctx, dir, base+".webp", "image/webp", bytes.NewReader(webpData))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to object store failed")
	}
	return b.svc.PublicURL(key), key, nil
}

func (b *OSSBlobService) UploadRaw(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	if fh == nil {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest, "File not found in request")
	}
	key, ct, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", "", "", fiber.NewError(fiber.StatusBadGateway, "Upload to object store failed")
	}
	return b.svc.PublicURL(key), key, ct, nil
}

func (b *OSSBlobService) DeleteByKey(ctx context.Context, objectKey string) error {
	if strings.TrimSpace(objectKey) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Empty object key")
	}
	if err := b.svc.DeleteObject(ctx, objectKey); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Delete from object store failed")
	}
	return nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Empty object URL")
	}
	if err := b.svc.DeleteByPublicURL(ctx, publicURL); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, "Delete from object store failed")
	}
	return nil
}

/* =========================
   Disabled fallback
   ========================= */

// DisabledBlobService stands in when object storage ENV is missing so the
// API can still boot. Every upload fails with 503.
type DisabledBlobService struct{}

func (DisabledBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	return "", "", fiber.NewError(fiber.StatusServiceUnavailable, "Object storage is not configured")
}

func (DisabledBlobService) UploadRaw(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	return "", "", "", fiber.NewError(fiber.StatusServiceUnavailable, "Object storage is not configured")
}

func (DisabledBlobService) DeleteByKey(ctx context.Context, objectKey string) error {
	return fiber.NewError(fiber.StatusServiceUnavailable, "Object storage is not configured")
}

func (DisabledBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	return fiber.NewError(fiber.StatusServiceUnavailable, "Object storage is not configured")
}

/* =========================
   Multipart helpers
   ========================= */

var fileFieldCandidates = []string{"file", "photo", "image", "upload", "attachment"}

// GetUploadFile returns the first multipart file found under the common
// field names, or nil when the request carries no file.
func GetUploadFile(c *fiber.Ctx) *multipart.FileHeader {
	for _, key := range fileFieldCandidates {
		if fh, err := c.FormFile(key); err == nil && fh != nil && fh.Filename != "" {
			return fh
		}
	}
	return nil
}
