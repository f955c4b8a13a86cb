package utils

import (
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// ——————————————————————————————————————————————————————————
// SanitizeFilename: strip anything that is not word, dot or dash
func SanitizeFilename(name string) string {
	re := regexp.MustCompile(`[^\w.\-]`)
	clean := re.ReplaceAllString(filepath.Base(name), "_")
	if clean == "" {
		return "file"
	}
	return clean
}
