package media

import (
	"context"
	"io"
)

// UploadOptions names the destination of an upload on the media host.
type UploadOptions struct {
	Folder   string
	PublicID string
	// ResourceType is "raw" for documents (résumés, cover letters) and
	// "image" for blog images. Empty means let the host detect it.
	ResourceType string
}

// UploadResult is the stable reference recorded on the owning record.
type UploadResult struct {
	PublicID  string
	SecureURL string
}

// Uploader relays binary payloads to the external media host. Callers must
// not persist a record that references a failed upload.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, opts UploadOptions) (*UploadResult, error)
}
