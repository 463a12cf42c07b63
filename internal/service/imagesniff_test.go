package service

import (
	"testing"
)

func TestMatchesImageSignature(t *testing.T) {
	jpeg := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	gif := []byte("GIF89a\x01\x00")
	webp := []byte("RIFF\x24\x00\x00\x00WEBPVP8 ")

	tests := []struct {
		name string
		ext  string
		data []byte
		want bool
	}{
		{name: "jpeg bytes with .jpg", ext: ".jpg", data: jpeg, want: true},
		{name: "jpeg bytes with .jpeg", ext: ".jpeg", data: jpeg, want: true},
		{name: "png bytes with .png", ext: ".png", data: png, want: true},
		{name: "gif bytes with .gif", ext: ".gif", data: gif, want: true},
		{name: "webp bytes with .webp", ext: ".webp", data: webp, want: true},
		{name: "jpeg bytes claiming .png", ext: ".png", data: jpeg, want: false},
		{name: "png bytes claiming .jpg", ext: ".jpg", data: png, want: false},
		{name: "riff without webp marker", ext: ".webp", data: []byte("RIFF\x24\x00\x00\x00WAVEfmt "), want: false},
		{name: "webp too short", ext: ".webp", data: []byte("RIFF\x24\x00WE"), want: false},
		{name: "empty data", ext: ".jpg", data: nil, want: false},
		{name: "unknown extension", ext: ".bmp", data: png, want: false},
		{name: "truncated png header", ext: ".png", data: png[:4], want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesImageSignature(tt.ext, tt.data); got != tt.want {
				t.Errorf("MatchesImageSignature(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestIsAllowedImageExtension(t *testing.T) {
	allowed := []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
	for _, ext := range allowed {
		if !IsAllowedImageExtension(ext) {
			t.Errorf("expected %s to be allowed", ext)
		}
	}

	denied := []string{".svg", ".bmp", ".tiff", ".exe", ".JPG", "jpg", ""}
	for _, ext := range denied {
		if IsAllowedImageExtension(ext) {
			t.Errorf("expected %q to be denied", ext)
		}
	}
}
