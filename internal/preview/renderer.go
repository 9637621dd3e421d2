package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"log"

	"github.com/ytget/image-drop/internal/model"
	"github.com/ytget/image-drop/internal/platform"
)

// MaxPreviewBytes caps how much of a file is read for the preview
const MaxPreviewBytes = 5 * 1024 * 1024

// Errors
var (
	ErrRead     = errors.New("failed to read image")
	ErrNotImage = errors.New("file content is not a supported image")
)

// EventKind is the stage of a preview read
type EventKind int

const (
	EventStart EventKind = iota
	EventLoaded
	EventError
)

// String returns the event name for logs
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventLoaded:
		return "loaded"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is delivered to the Render callback
type Event struct {
	Kind    EventKind
	DataURI string // set for EventLoaded
	Err     error  // set for EventError
}

// Renderer turns file descriptors into data URIs asynchronously
type Renderer struct {
	dispatch func(func())
	maxBytes int64
}

// NewRenderer creates a renderer. Results are handed to dispatch (fyne.Do in the
// app) so callbacks run on the UI goroutine; with a nil dispatch they run on the
// reading goroutine.
func NewRenderer(dispatch func(func())) *Renderer {
	return &Renderer{
		dispatch: dispatch,
		maxBytes: MaxPreviewBytes,
	}
}

// Render emits EventStart right away, then reads the file in the background and
// emits EventLoaded or EventError. Nothing is delivered once ctx is cancelled.
func (r *Renderer) Render(ctx context.Context, desc model.FileDescriptor, onEvent func(Event)) {
	onEvent(Event{Kind: EventStart})

	go func() {
		dataURI, err := r.Load(desc)
		ev := Event{Kind: EventLoaded, DataURI: dataURI}
		if err != nil {
			ev = Event{Kind: EventError, Err: err}
		}

		deliver := func() {
			if ctx.Err() != nil {
				log.Printf("Dropping preview %s for %s: %v", ev.Kind, desc.Name, ctx.Err())
				return
			}
			onEvent(ev)
		}

		if r.dispatch == nil {
			deliver()
			return
		}
		r.dispatch(deliver)
	}()
}

// Load reads desc synchronously and returns its data URI
func (r *Renderer) Load(desc model.FileDescriptor) (string, error) {
	rc, err := desc.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, r.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	if int64(len(data)) > r.maxBytes {
		return "", fmt.Errorf("%w: more than %d bytes", ErrRead, r.maxBytes)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	mimeType := desc.MimeType
	if mimeType == "" {
		mimeType = "image/" + format
	}
	return platform.EncodeDataURI(mimeType, data), nil
}
