package storage

import (
	"context"
	"io"
	"strings"
)

// FileStorage stores uploaded image blobs and returns the public URL they
// will be served from. Stored names are generated, never the client filename.
type FileStorage interface {
	Save(ctx context.Context, content io.Reader, ext string) (string, error)
}

// allowedImageExts is the upload allow-list.
var allowedImageExts = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true,
}

// AllowedImageExt extracts the lowercase extension from a filename and
// reports whether it is an accepted image type.
func AllowedImageExt(filename string) (string, bool) {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return "", false
	}
	ext := strings.ToLower(filename[i+1:])
	return ext, allowedImageExts[ext]
}

func contentTypeForExt(ext string) string {
	switch ext {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
