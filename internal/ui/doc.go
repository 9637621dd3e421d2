package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// Controller drives the upload flow as a state machine; RootUI renders its state,
// forwards drops, clicks and shortcuts to it and owns the settings dialog.
// All UI strings are localized via Localization.
