package ui

import (
	"bytes"
	"image/png"
	"testing"
)

func TestAppIcon(t *testing.T) {
	if AppIcon.Name() != "image-drop.png" {
		t.Errorf("Unexpected icon name %q", AppIcon.Name())
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(AppIcon.Content()))
	if err != nil {
		t.Fatalf("Embedded icon is not a PNG: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 64 {
		t.Errorf("Expected a 64x64 icon, got %dx%d", cfg.Width, cfg.Height)
	}
}
