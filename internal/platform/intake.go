package platform

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/image-drop/internal/model"
)

// MIME detection constants
const (
	SniffLength       = 512
	FallbackMimeType  = "application/octet-stream"
	PlainTextMimeType = "text/plain"
	FileScheme        = "file"
)

// ImageExtensions are offered by the file chooser filter
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// DescriptorFromURI builds a file descriptor for a dropped or picked file.
// The returned descriptor reads the bytes lazily through Fyne storage.
func DescriptorFromURI(uri fyne.URI) (model.FileDescriptor, error) {
	if uri == nil {
		return model.FileDescriptor{}, fmt.Errorf("no file URI provided")
	}

	open := func() (io.ReadCloser, error) {
		return storage.Reader(uri)
	}

	size, err := uriSize(uri, open)
	if err != nil {
		return model.FileDescriptor{}, fmt.Errorf("failed to stat %s: %w", uri.Name(), err)
	}

	mimeType := uri.MimeType()
	if mimeType == "" || mimeType == FallbackMimeType || mimeType == PlainTextMimeType {
		// Extension did not tell us anything useful, look at the content
		if sniffed, err := DetectMimeType(open); err == nil {
			mimeType = sniffed
		}
	}

	return model.FileDescriptor{
		Name:      uri.Name(),
		MimeType:  mimeType,
		SizeBytes: size,
		Source:    open,
	}, nil
}

// DetectMimeType sniffs the first bytes of a file like a browser does
func DetectMimeType(open func() (io.ReadCloser, error)) (string, error) {
	rc, err := open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	head := make([]byte, SniffLength)
	n, err := io.ReadFull(rc, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	mimeType, _, _ := strings.Cut(http.DetectContentType(head[:n]), ";")
	return strings.TrimSpace(mimeType), nil
}

// uriSize returns the byte size of the resource behind uri
func uriSize(uri fyne.URI, open func() (io.ReadCloser, error)) (int64, error) {
	if uri.Scheme() == FileScheme {
		info, err := os.Stat(uri.Path())
		if err != nil {
			return 0, err
		}
		return info.Size(), nil
	}

	// Non-file repositories have no stat, count the bytes instead
	rc, err := open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return io.Copy(io.Discard, rc)
}
