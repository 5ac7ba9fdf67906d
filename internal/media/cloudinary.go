package media

import (
	"context"
	"fmt"
	"io"

	"github.com/KunalGarg-PEC/BlogsApi/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary implements Uploader against the Cloudinary upload API.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinary builds the client from static credentials.
func NewCloudinary(cfg config.CloudinaryConfig) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Cloudinary{cld: cld}, nil
}

func (u *Cloudinary) Upload(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error) {
	resp, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       opts.Folder,
		PublicID:     opts.PublicID,
		ResourceType: opts.ResourceType,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	// the SDK reports some remote failures in the body, not as an error
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return &UploadResult{PublicID: resp.PublicID, SecureURL: resp.SecureURL}, nil
}
