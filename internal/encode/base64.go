package encode

import (
	"encoding/base64"
	"strings"
)

func DecodeBase64String(value string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(value)
}

func EncodeBase64String(value []byte) string {
	return base64.StdEncoding.EncodeToString(value)
}

// StripDataURL returns the payload of a `data:<mime>;base64,<payload>` URL.
// Values without the data: scheme are returned trimmed but otherwise untouched.
func StripDataURL(value string) string {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "data:") {
		return trimmed
	}
	if idx := strings.Index(trimmed, ","); idx > 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}
