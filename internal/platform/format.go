package platform

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Truncation marker inserted between the kept name prefix and the extension
const Ellipsis = "..."

// FormatFileSize formats file size in bytes to human readable format
func FormatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// TruncateFileName shortens name to at most maxLength characters, keeping the
// extension and marking the cut with an ellipsis ("a_very_lo...png").
func TruncateFileName(name string, maxLength int) string {
	if utf8.RuneCountInString(name) <= maxLength {
		return name
	}

	base, ext := name, ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		base, ext = name[:idx], name[idx+1:]
	}

	keep := maxLength - utf8.RuneCountInString(ext) - len(Ellipsis)
	if keep < 0 {
		// Extension alone does not fit, cut the whole name instead
		runes := []rune(name)
		if maxLength <= len(Ellipsis) {
			return string(runes[:maxLength])
		}
		return string(runes[:maxLength-len(Ellipsis)]) + Ellipsis
	}

	runes := []rune(base)
	if keep > len(runes) {
		keep = len(runes)
	}
	return string(runes[:keep]) + Ellipsis + ext
}
