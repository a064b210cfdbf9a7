package uploader

import "context"

// Uploader pushes a local file to external asset storage and returns
// the public secure URL of the stored asset.
type Uploader interface {
	Upload(ctx context.Context, filePath string) (string, error)
}
