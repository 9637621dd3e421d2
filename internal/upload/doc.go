package upload

// Package upload implements file intake for the uploader: type/size validation
// and the simulated upload that drives the progress bar. Timing goes through a
// Scheduler so every callback can be marshalled onto the UI goroutine and tests
// can run on a virtual clock.
