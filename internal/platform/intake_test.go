package platform

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
)

// pngHeader is enough for http.DetectContentType to recognise a PNG
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestDescriptorFromURI_File(t *testing.T) {
	test.NewApp()

	content := append([]byte{}, pngHeader...)
	content = append(content, make([]byte, 100)...)
	path := writeTempFile(t, "photo.png", content)

	desc, err := DescriptorFromURI(storage.NewFileURI(path))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if desc.Name != "photo.png" {
		t.Errorf("Expected name photo.png, got %s", desc.Name)
	}
	if desc.MimeType != "image/png" {
		t.Errorf("Expected mime image/png, got %s", desc.MimeType)
	}
	if desc.SizeBytes != int64(len(content)) {
		t.Errorf("Expected size %d, got %d", len(content), desc.SizeBytes)
	}

	rc, err := desc.Open()
	if err != nil {
		t.Fatalf("Expected to open descriptor, got %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("Failed to read descriptor: %v", err)
	}
	if len(data) != len(content) {
		t.Errorf("Expected %d bytes, got %d", len(content), len(data))
	}
}

func TestDescriptorFromURI_SniffsUnknownExtension(t *testing.T) {
	test.NewApp()

	content := append([]byte{}, pngHeader...)
	path := writeTempFile(t, "screenshot.unknownext", content)

	desc, err := DescriptorFromURI(storage.NewFileURI(path))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if desc.MimeType != "image/png" {
		t.Errorf("Expected sniffed mime image/png, got %s", desc.MimeType)
	}
}

func TestDescriptorFromURI_MissingFile(t *testing.T) {
	test.NewApp()

	missing := filepath.Join(t.TempDir(), "gone.png")
	_, err := DescriptorFromURI(storage.NewFileURI(missing))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "gone.png") {
		t.Errorf("Expected error to mention file name, got %v", err)
	}
}

func TestDetectMimeType(t *testing.T) {
	tests := []struct {
		content  []byte
		expected string
	}{
		{pngHeader, "image/png"},
		{[]byte("GIF89a\x01\x00\x01\x00"), "image/gif"},
		{[]byte{0xff, 0xd8, 0xff, 0xe0}, "image/jpeg"},
		{[]byte("just some words"), "text/plain"},
	}

	for _, tc := range tests {
		content := tc.content
		open := func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(string(content))), nil
		}
		result, err := DetectMimeType(open)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if result != tc.expected {
			t.Errorf("DetectMimeType() = %s, expected %s", result, tc.expected)
		}
	}
}
