package storage

import (
	"fmt"
	"path"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageKey returns the object key for an uploaded cover image, or an error
// when contentType is not an accepted image type.
func ImageKey(email, contentType string) (string, error) {
	ext, ok := imageExt[strings.ToLower(strings.TrimSpace(contentType))]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	owner := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(email)
	if owner == "" {
		owner = "anonymous"
	}
	return path.Join("covers", owner, primitive.NewObjectID().Hex()+ext), nil
}
