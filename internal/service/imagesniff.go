package service

import (
	"bytes"
)

// allowedImageExtensions is the upload allow-list. Extensions are lower-case
// and include the leading dot.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsAllowedImageExtension reports whether ext (lower-case, leading dot) is
// accepted for upload.
func IsAllowedImageExtension(ext string) bool {
	return allowedImageExtensions[ext]
}

var (
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gifSignature  = []byte("GIF8")
	riffSignature = []byte("RIFF")
	webpSignature = []byte("WEBP")
)

// MatchesImageSignature verifies that the leading bytes of data carry the
// magic-number signature expected for the claimed extension. This defeats
// extension spoofing: renaming a file does not change its signature.
//
// WebP is a RIFF container: bytes 0-3 are "RIFF", bytes 8-11 are "WEBP"
// (bytes 4-7 hold the chunk size and are not checked).
func MatchesImageSignature(ext string, data []byte) bool {
	switch ext {
	case ".jpg", ".jpeg":
		return bytes.HasPrefix(data, jpegSignature)
	case ".png":
		return bytes.HasPrefix(data, pngSignature)
	case ".gif":
		return bytes.HasPrefix(data, gifSignature)
	case ".webp":
		return len(data) >= 12 &&
			bytes.Equal(data[0:4], riffSignature) &&
			bytes.Equal(data[8:12], webpSignature)
	default:
		return false
	}
}
