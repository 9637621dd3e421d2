package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DropZone is the clickable target that invites the user to drop or pick an image.
// Hover stands in for drag-over highlighting since the window only reports the drop itself.
type DropZone struct {
	widget.BaseWidget

	OnTapped func()

	icon    *widget.Label
	prompt  *widget.Label
	hint    *widget.Label
	formats *widget.Label

	hovered bool
	pressed bool
	offset  float32
	shaking *fyne.Animation

	scale     float32
	squeezing *fyne.Animation
}

// NewDropZone creates a drop zone with the given texts
func NewDropZone(prompt, hint, formats string, onTapped func()) *DropZone {
	d := &DropZone{
		OnTapped: onTapped,
		icon:     widget.NewLabelWithStyle(IconUpload, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		prompt:   widget.NewLabelWithStyle(prompt, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		hint:     widget.NewLabelWithStyle(hint, fyne.TextAlignCenter, fyne.TextStyle{}),
		formats:  widget.NewLabelWithStyle(formats, fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		scale:    1,
	}
	d.icon.SizeName = theme.SizeNameHeadingText
	d.ExtendBaseWidget(d)
	return d
}

// SetTexts replaces the labels after a language change
func (d *DropZone) SetTexts(prompt, hint, formats string) {
	d.prompt.SetText(prompt)
	d.hint.SetText(hint)
	d.formats.SetText(formats)
}

// Tapped opens the chooser and pulses the zone
func (d *DropZone) Tapped(_ *fyne.PointEvent) {
	d.pressed = true
	d.Refresh()
	go func() {
		time.Sleep(ClickPulseDuration)
		fyne.Do(func() {
			d.pressed = false
			d.Refresh()
		})
	}()

	if d.OnTapped != nil {
		d.OnTapped()
	}
}

// MouseIn highlights the zone
func (d *DropZone) MouseIn(_ *desktop.MouseEvent) {
	d.setHover(true)
}

// MouseMoved keeps the highlight
func (d *DropZone) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut removes the highlight
func (d *DropZone) MouseOut() {
	d.setHover(false)
}

// Cursor shows a pointer over the zone
func (d *DropZone) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

func (d *DropZone) setHover(on bool) {
	if d.hovered == on {
		return
	}
	d.hovered = on
	d.Refresh()
}

// Shake jiggles the zone horizontally to signal a rejected file
func (d *DropZone) Shake() {
	if d.shaking != nil {
		d.shaking.Stop()
	}
	d.shaking = fyne.NewAnimation(ShakeDuration, func(progress float32) {
		d.offset = shakeOffset(progress)
		d.Refresh()
	})
	d.shaking.Curve = fyne.AnimationEaseInOut
	d.shaking.Start()
}

// shakeOffset maps animation progress to the 0, -10, +10, 0 keyframes
func shakeOffset(progress float32) float32 {
	switch {
	case progress <= 0 || progress >= 1:
		return 0
	case progress < 1.0/3:
		return -ShakeOffset * progress * 3
	case progress < 2.0/3:
		return -ShakeOffset + 2*ShakeOffset*(progress-1.0/3)*3
	default:
		return ShakeOffset - ShakeOffset*(progress-2.0/3)*3
	}
}

// Squeeze briefly shrinks the zone to acknowledge a drop
func (d *DropZone) Squeeze() {
	if d.squeezing != nil {
		d.squeezing.Stop()
	}
	d.squeezing = fyne.NewAnimation(DropSqueezeDuration, func(progress float32) {
		d.scale = squeezeScale(progress)
		d.Refresh()
	})
	d.squeezing.Start()
}

// squeezeScale dips to DropSqueezeScale halfway through the animation
func squeezeScale(progress float32) float32 {
	switch {
	case progress <= 0 || progress >= 1:
		return 1
	case progress < 0.5:
		return 1 - (1-DropSqueezeScale)*progress*2
	default:
		return DropSqueezeScale + (1-DropSqueezeScale)*(progress-0.5)*2
	}
}

// zoneBounds scales size around its center and shifts it horizontally by offset
func zoneBounds(size fyne.Size, offset, scale float32) (fyne.Position, fyne.Size) {
	scaled := fyne.NewSize(size.Width*scale, size.Height*scale)
	pos := fyne.NewPos((size.Width-scaled.Width)/2+offset, (size.Height-scaled.Height)/2)
	return pos, scaled
}

// CreateRenderer implements fyne.Widget
func (d *DropZone) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	bg.StrokeWidth = 2
	bg.CornerRadius = theme.InputRadiusSize() * 3

	content := container.NewCenter(container.NewVBox(d.icon, d.prompt, d.hint, d.formats))

	r := &dropZoneRenderer{d: d, bg: bg, content: content}
	r.applyColors()
	return r
}

type dropZoneRenderer struct {
	d       *DropZone
	bg      *canvas.Rectangle
	content *fyne.Container
}

func (r *dropZoneRenderer) Layout(size fyne.Size) {
	pos, scaled := zoneBounds(size, r.d.offset, r.d.scale)
	r.bg.Resize(scaled)
	r.bg.Move(pos)
	r.content.Resize(scaled)
	r.content.Move(pos)
}

func (r *dropZoneRenderer) MinSize() fyne.Size {
	return r.content.MinSize().Max(fyne.NewSize(DropZoneMinWidth, DropZoneMinHeight))
}

func (r *dropZoneRenderer) Refresh() {
	r.applyColors()
	r.Layout(r.d.Size())
	r.bg.Refresh()
	r.content.Refresh()
}

func (r *dropZoneRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.content}
}

func (r *dropZoneRenderer) Destroy() {}

func (r *dropZoneRenderer) applyColors() {
	switch {
	case r.d.pressed:
		r.bg.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.bg.FillColor = theme.Color(theme.ColorNamePressed)
	case r.d.hovered:
		r.bg.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.bg.FillColor = theme.Color(theme.ColorNameHover)
	default:
		r.bg.StrokeColor = theme.Color(theme.ColorNameInputBorder)
		r.bg.FillColor = theme.Color(theme.ColorNameInputBackground)
	}
}
