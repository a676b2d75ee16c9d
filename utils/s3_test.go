package utils

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeImageDataURI(t *testing.T) {
	t.Parallel()

	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

	data, contentType, err := DecodeImageDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeImageDataURI: %v", err)
	}
	if contentType != "image/jpeg" {
		t.Fatalf("content type = %q", contentType)
	}
	if !bytes.Equal(data, raw) {
		t.Fatalf("decoded bytes = %v, want %v", data, raw)
	}
}

func TestDecodeImageDataURIRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"not a data uri",
		"data:text/plain;base64,aGVsbG8=",
		"data:image/png;base64,%%%not-base64%%%",
	}
	for _, uri := range cases {
		if _, _, err := DecodeImageDataURI(uri); err == nil {
			t.Fatalf("DecodeImageDataURI(%q) should fail", uri)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	if got := extensionFor("image/jpeg"); got != ".jpg" {
		t.Fatalf("jpeg ext = %q", got)
	}
	if got := extensionFor("image/webp"); !strings.HasPrefix(got, ".") {
		t.Fatalf("webp ext = %q", got)
	}
}
