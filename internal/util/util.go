package util

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// NewStorageKey builds an object storage key of the form
// <prefix>/<uuid><ext>, preserving the original file extension in lower
// case so content sniffing on the storage side keeps working.
func NewStorageKey(prefix, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	return prefix + "/" + uuid.NewString() + ext
}

// SanitizeFileName strips path separators from a user supplied filename
// so it can be echoed back in a Content-Disposition header.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}

	return strings.ReplaceAll(name, `"`, "")
}
