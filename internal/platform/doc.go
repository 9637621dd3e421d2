package platform

// Package platform contains OS/platform integration glue: turning dropped or
// picked Fyne URIs into file descriptors, MIME sniffing, data URI encoding and
// the human-readable formatting helpers used by the UI.
