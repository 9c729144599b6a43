// Package classify assigns cleanup categories to files based on their
// extension or filename. The extension table is embedded so results do not
// depend on the host's MIME database.
package classify

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Category labels produced by ByExtension.
const (
	Video    = "Video"
	Audio    = "Audio"
	Image    = "Image"
	Text     = "Text"
	Document = "Document"
	Archive  = "Archive"
	Code     = "Code"
	Other    = "Other"
	Unknown  = "Unknown"
)

// extTable maps lowercase extensions to categories. Version 1.
var extTable = map[string]string{
	// Video
	".mp4": Video, ".mov": Video, ".avi": Video, ".mkv": Video,
	".webm": Video, ".flv": Video, ".wmv": Video, ".m4v": Video,
	".mpg": Video, ".mpeg": Video,

	// Audio
	".mp3": Audio, ".wav": Audio, ".flac": Audio, ".aac": Audio,
	".ogg": Audio, ".m4a": Audio, ".wma": Audio, ".aiff": Audio,

	// Image
	".jpg": Image, ".jpeg": Image, ".png": Image, ".gif": Image,
	".bmp": Image, ".tiff": Image, ".tif": Image, ".webp": Image,
	".heic": Image, ".svg": Image, ".ico": Image,

	// Text
	".txt": Text, ".md": Text, ".csv": Text, ".log": Text,
	".html": Text, ".htm": Text, ".css": Text, ".rtf": Text,

	// Document (PDF only)
	".pdf": Document,

	// Archive
	".zip": Archive, ".tar": Archive, ".gz": Archive, ".tgz": Archive,
	".bz2": Archive, ".7z": Archive, ".rar": Archive, ".xz": Archive,

	// Code
	".js": Code, ".mjs": Code, ".json": Code, ".xml": Code,
	".yaml": Code, ".yml": Code,

	// Other application-class formats
	".doc": Other, ".docx": Other, ".xls": Other, ".xlsx": Other,
	".ppt": Other, ".pptx": Other, ".exe": Other, ".dmg": Other,
	".iso": Other, ".bin": Other, ".db": Other, ".sqlite": Other,
	".dll": Other, ".so": Other, ".dylib": Other, ".pkg": Other,
	".deb": Other, ".rpm": Other, ".apk": Other, ".jar": Other,
	".wasm": Other,
}

// ByExtension returns the content-type category for a file path.
// Extensions absent from the table map to Unknown.
func ByExtension(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if cat, ok := extTable[ext]; ok {
		return cat
	}
	return Unknown
}

// screenshotPatterns are tried in order. Matching is case-sensitive and
// anchored at the start of the filename only.
var screenshotPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^Screenshot \d{4}-\d{2}-\d{2}.*\.png`), // macOS Ventura naming
	regexp.MustCompile(`^Screen Shot \d{4}-\d{2}-\d{2}.*\.png`), // older macOS naming
	regexp.MustCompile(`^Screenshot.*\.png`),
	regexp.MustCompile(`^Screen Recording.*\.mov`),
}

// IsScreenshot reports whether a filename follows a screenshot or screen
// recording naming convention.
func IsScreenshot(name string) bool {
	for _, p := range screenshotPatterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}
