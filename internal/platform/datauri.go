package platform

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Data URI constants
const (
	DataURIScheme    = "data:"
	DataURIBase64Tag = ";base64"
)

// ErrMalformedDataURI is returned when a string is not a base64 data URI
var ErrMalformedDataURI = errors.New("malformed data URI")

// EncodeDataURI returns "data:<mime>;base64,<payload>" for content
func EncodeDataURI(mimeType string, content []byte) string {
	var b strings.Builder
	b.Grow(len(DataURIScheme) + len(mimeType) + len(DataURIBase64Tag) + 1 + base64.StdEncoding.EncodedLen(len(content)))
	b.WriteString(DataURIScheme)
	b.WriteString(mimeType)
	b.WriteString(DataURIBase64Tag)
	b.WriteByte(',')
	b.WriteString(base64.StdEncoding.EncodeToString(content))
	return b.String()
}

// DecodeDataURI splits a base64 data URI into its MIME type and decoded bytes
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, DataURIScheme) {
		return "", nil, fmt.Errorf("%w: missing %q prefix", ErrMalformedDataURI, DataURIScheme)
	}

	header, payload, found := strings.Cut(strings.TrimPrefix(uri, DataURIScheme), ",")
	if !found {
		return "", nil, fmt.Errorf("%w: missing payload separator", ErrMalformedDataURI)
	}
	if !strings.HasSuffix(header, DataURIBase64Tag) {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrMalformedDataURI)
	}

	mimeType := strings.TrimSuffix(header, DataURIBase64Tag)
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedDataURI, err)
	}
	return mimeType, data, nil
}
