// Package media uploads identity and vehicle images referenced by a rider
// application and returns the permanent identifiers the API stores.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
)

// ErrNotConfigured is returned by NewCloudinaryUploader without credentials
var ErrNotConfigured = errors.New("media: cloudinary credentials not set")

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".heic": true,
	".pdf":  true,
}

// CloudinaryUploader uploads local files to a Cloudinary folder
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader from configuration
func NewCloudinaryUploader(cfg models.CloudinaryConfig) (*CloudinaryUploader, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return NewUploader(cld, cfg.Folder), nil
}

// NewUploader wraps an existing Cloudinary client
func NewUploader(cld *cloudinary.Cloudinary, folder string) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld, folder: folder}
}

// Upload uploads the file at localPath and returns its public ID
func (u *CloudinaryUploader) Upload(ctx context.Context, localPath string) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder: u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", localPath, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload %s: %s", localPath, result.Error.Message)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("failed to upload %s: no public ID returned", localPath)
	}

	logger.Debug("Uploaded media",
		logger.String("path", localPath),
		logger.String("public_id", result.PublicID))

	return result.PublicID, nil
}

// IsLocalFile reports whether ref names a regular file on disk. Anything else
// (an uploaded id, a URL) is treated as already remote.
func IsLocalFile(ref string) bool {
	if ref == "" {
		return false
	}
	info, err := os.Stat(ref)
	return err == nil && info.Mode().IsRegular()
}

// LooksLocal reports whether ref is written like a file path rather than an
// uploaded id or URL, whether or not the file exists.
func LooksLocal(ref string) bool {
	if ref == "" || api.IsValidURL(ref) {
		return false
	}
	if filepath.IsAbs(ref) {
		return true
	}
	for _, prefix := range []string{"./", "../", ".\\", "..\\"} {
		if strings.HasPrefix(ref, prefix) {
			return true
		}
	}
	return imageExtensions[strings.ToLower(filepath.Ext(ref))]
}
