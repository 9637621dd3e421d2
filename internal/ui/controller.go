package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/ytget/image-drop/internal/model"
	"github.com/ytget/image-drop/internal/platform"
	"github.com/ytget/image-drop/internal/preview"
	"github.com/ytget/image-drop/internal/upload"
)

// View draws controller state and performs the effects the controller asks for
type View interface {
	Render(state model.UIState)
	Shake()
	OpenFileChooser()
	Notify(message string)
}

// Store persists the most recent image
type Store interface {
	Save(dataURI string) error
	Load() (model.PersistedImage, bool)
	Clear()
}

// Previewer turns a file into a data URI, reporting start/loaded/error
type Previewer interface {
	Render(ctx context.Context, desc model.FileDescriptor, onEvent func(preview.Event))
}

// Controller runs the upload flow: validation delay, simulated upload, preview,
// persistence and the success/error indicators. All methods and callbacks must
// run on the UI goroutine; the scheduler and previewer are expected to dispatch
// there.
type Controller struct {
	view         View
	store        Store
	uploader     upload.Uploader
	previewer    Previewer
	scheduler    upload.Scheduler
	localization *Localization

	state model.UIState

	// errorKey and restoredAt let the banner and the restore note follow a language change
	errorKey   string
	restoredAt string

	// generation changes whenever a new file or a removal supersedes the current flow
	generation      uint64
	validationTimer upload.Timer
	dismissTimer    upload.Timer
	flashTimer      upload.Timer
	cancelPreview   context.CancelFunc
}

// NewController creates a controller in the idle state
func NewController(view View, store Store, uploader upload.Uploader, previewer Previewer, scheduler upload.Scheduler, localization *Localization) *Controller {
	if localization == nil {
		localization = NewLocalization()
	}
	return &Controller{
		view:         view,
		store:        store,
		uploader:     uploader,
		previewer:    previewer,
		scheduler:    scheduler,
		localization: localization,
		state:        model.UIState{Phase: model.PhaseIdle},
	}
}

// State returns a copy of the current state
func (c *Controller) State() model.UIState {
	return c.state
}

// HandleFile starts the flow for a newly chosen or dropped file
func (c *Controller) HandleFile(desc model.FileDescriptor) {
	gen := c.supersede()
	log.Printf("Handling file %s (type=%q, size=%d)", desc.Name, desc.MimeType, desc.SizeBytes)

	c.state = model.UIState{Phase: model.PhaseValidating, Loading: true}
	c.render()

	c.validationTimer = c.scheduler.AfterFunc(ValidationDelay, func() {
		if gen != c.generation {
			return
		}
		c.validationTimer = nil
		c.validate(gen, desc)
	})
}

// HandleUnreadable reports a file that could not even be opened for inspection
func (c *Controller) HandleUnreadable(name string, err error) {
	gen := c.supersede()
	log.Printf("Cannot read %s: %v", name, err)
	c.state = model.UIState{Phase: model.PhaseIdle}
	c.showError(gen, KeyPreviewFailed, false)
}

// Remove clears the image after the Remove button and confirms with a toast
func (c *Controller) Remove() {
	c.clearImage()
	c.view.Notify(c.localization.GetText(KeyImageRemoved))
}

// HandleEscape clears the image without a confirmation
func (c *Controller) HandleEscape() {
	c.clearImage()
}

// Replace asks the view for a new file; the choice comes back through HandleFile
func (c *Controller) Replace() {
	c.view.OpenFileChooser()
}

// Restore shows the persisted image, if any, without running the upload flow.
// It reports whether an image was restored.
func (c *Controller) Restore() bool {
	img, ok := c.store.Load()
	if !ok {
		return false
	}
	if c.state.Phase != model.PhaseIdle {
		log.Printf("Skipping restore, controller is %s", c.state.Phase)
		return false
	}

	c.restoredAt = ""
	if t, err := img.SavedAt(); err == nil {
		c.restoredAt = t.Local().Format(RestoredTimeLayout)
	} else {
		log.Printf("Unreadable save timestamp %q: %v", img.SavedAtISO, err)
	}

	c.state = model.UIState{
		Phase:          model.PhasePreviewReady,
		PreviewVisible: true,
		DataURI:        img.DataURI,
		RestoredNote:   c.restoredNote(),
		ActionsVisible: true,
	}
	c.render()
	log.Printf("Restored image saved at %s", img.SavedAtISO)
	return true
}

// RefreshTexts re-translates the error banner and the restore note after a language change
func (c *Controller) RefreshTexts() {
	if c.state.ErrorMessage != "" && c.errorKey != "" {
		c.state.ErrorMessage = c.localization.GetText(c.errorKey)
	}
	if c.state.RestoredNote != "" {
		c.state.RestoredNote = c.restoredNote()
	}
	c.render()
}

func (c *Controller) restoredNote() string {
	savedAt := c.restoredAt
	if savedAt == "" {
		savedAt = c.localization.GetText(KeyPreviously)
	}
	return fmt.Sprintf(c.localization.GetText(KeyLoadedFromStorage), savedAt)
}

// validate runs once the validation delay elapses
func (c *Controller) validate(gen uint64, desc model.FileDescriptor) {
	c.state.Loading = false

	result := upload.Validate(desc)
	if !result.Accepted {
		log.Printf("Rejected %s: %s (%v)", desc.Name, result.Reason, upload.ResultError(result))
		c.showError(gen, rejectionKey(result.Reason), true)
		return
	}

	c.state = model.UIState{
		Phase:           model.PhaseUploading,
		FileName:        platform.TruncateFileName(desc.Name, MaxDisplayNameLength),
		FileSize:        platform.FormatFileSize(desc.SizeBytes),
		FileIcon:        fileIcon(desc.Subtype()),
		ProgressVisible: true,
	}
	c.render()

	c.uploader.Start(desc.Name,
		func(percent int) {
			if gen != c.generation {
				return
			}
			c.state.Percent = percent
			c.render()
		},
		func() {
			if gen != c.generation {
				return
			}
			c.showPreview(gen, desc)
		},
	)
}

// showPreview enters PREVIEW_READY and starts reading the file
func (c *Controller) showPreview(gen uint64, desc model.FileDescriptor) {
	c.state.Phase = model.PhasePreviewReady
	c.state.Percent = 100

	ctx, cancel := context.WithCancel(context.Background())
	c.cancelPreview = cancel

	c.previewer.Render(ctx, desc, func(ev preview.Event) {
		if gen != c.generation {
			return
		}
		switch ev.Kind {
		case preview.EventStart:
			c.state.PreviewVisible = true
			c.state.PreviewDimmed = true
			c.render()
		case preview.EventLoaded:
			c.onPreviewLoaded(gen, ev.DataURI)
		case preview.EventError:
			log.Printf("Preview failed for %s: %v", desc.Name, ev.Err)
			c.state.PreviewVisible = false
			c.state.PreviewDimmed = false
			c.state.DataURI = ""
			c.showError(gen, KeyPreviewFailed, false)
		}
	})
}

func (c *Controller) onPreviewLoaded(gen uint64, dataURI string) {
	c.state.PreviewVisible = true
	c.state.PreviewDimmed = false
	c.state.DataURI = dataURI
	c.state.ActionsVisible = true

	if err := c.store.Save(dataURI); err != nil {
		log.Printf("failed to persist image: %v", err)
	}

	c.state.Phase = model.PhaseSuccessFlash
	c.state.SuccessVisible = true
	c.render()

	c.flashTimer = c.scheduler.AfterFunc(SuccessFlashDuration, func() {
		if gen != c.generation {
			return
		}
		c.flashTimer = nil
		c.state.Phase = model.PhasePreviewReady
		c.state.SuccessVisible = false
		c.render()
	})
}

// showError shows the text for key in the banner and dismisses it back to idle later
func (c *Controller) showError(gen uint64, key string, shake bool) {
	c.errorKey = key
	c.state.Phase = model.PhaseError
	c.state.Loading = false
	c.state.SuccessVisible = false
	c.state.ErrorMessage = c.localization.GetText(key)
	c.render()

	if shake {
		c.view.Shake()
	}

	c.dismissTimer = c.scheduler.AfterFunc(ErrorDismissDelay, func() {
		if gen != c.generation {
			return
		}
		c.dismissTimer = nil
		c.state = model.UIState{Phase: model.PhaseIdle}
		c.render()
	})
}

func (c *Controller) clearImage() {
	c.supersede()
	c.store.Clear()
	c.state = model.UIState{Phase: model.PhaseIdle}
	c.render()
	log.Printf("Image cleared")
}

// supersede cancels every pending timer, run and preview read and starts a new generation
func (c *Controller) supersede() uint64 {
	c.generation++

	for _, t := range []upload.Timer{c.validationTimer, c.dismissTimer, c.flashTimer} {
		if t != nil {
			t.Stop()
		}
	}
	c.validationTimer = nil
	c.dismissTimer = nil
	c.flashTimer = nil

	c.uploader.Cancel()

	if c.cancelPreview != nil {
		c.cancelPreview()
		c.cancelPreview = nil
	}
	return c.generation
}

func rejectionKey(reason model.ReasonCode) string {
	switch reason {
	case model.ReasonTooLarge:
		return KeyFileTooLarge
	default:
		return KeyInvalidType
	}
}

func (c *Controller) render() {
	c.view.Render(c.state)
}

// fileIcon picks the icon for an image subtype such as "png"
func fileIcon(subtype string) string {
	switch subtype {
	case "png":
		return IconPNG
	case "jpeg":
		return IconJPEG
	default:
		return IconImage
	}
}
