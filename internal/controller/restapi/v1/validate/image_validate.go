package validate

import "strings"

const (
	MaxFileSize int64 = 10 * 1024 * 1024

	FormField = "image"
)

// AllowedContentTypes are the declared part types accepted for upload. The
// bytes are still decoded before anything is stored, so the declaration is a
// first filter only.
var AllowedContentTypes = map[string]bool{
	"":                         true,
	"application/octet-stream": true,
	"image/jpeg":               true,
	"image/jpg":                true,
	"image/png":                true,
	"image/gif":                true,
	"image/webp":               true,
	"image/bmp":                true,
	"image/tiff":               true,
}

func ContentType(header string) bool {
	ct, _, _ := strings.Cut(header, ";")

	return AllowedContentTypes[strings.ToLower(strings.TrimSpace(ct))]
}

// BearerToken extracts the credential from an Authorization header. Both
// "Bearer <token>" and a bare token are accepted.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "bearer") {
		return ""
	}

	scheme, token, found := strings.Cut(header, " ")
	if found && strings.EqualFold(scheme, "bearer") {
		return strings.TrimSpace(token)
	}

	return header
}
