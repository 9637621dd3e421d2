package preview

// Package preview reads an accepted image file off the UI goroutine, checks that
// it decodes as an image and turns it into a data URI the view can display and
// the store can persist.
