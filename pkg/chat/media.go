package chat

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// maxInlineImageBytes caps how much image data is inlined into a
// single SSE frame as a data URL.
const maxInlineImageBytes = 10 << 20 // 10 MiB

var (
	mediaMarkerRE   = regexp.MustCompile(`(?i)(?:MEDIA|Image saved):\s*(\S+)`)
	fileProtocolRE  = regexp.MustCompile(`(?i)file://(/[^\s"'\)\]>]+)`)
	imageExtensions = map[string]string{
		".png":  "image/png",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".gif":  "image/gif",
		".webp": "image/webp",
		".bmp":  "image/bmp",
	}
)

// ExtractMediaPaths scans tool output or final text for explicit media
// marker lines ("MEDIA: <path>" and "Image saved: <path>",
// case-insensitive) and returns the referenced image paths,
// de-duplicated, order preserved. Non-image extensions are dropped.
func ExtractMediaPaths(text string) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, m := range mediaMarkerRE.FindAllStringSubmatch(text, -1) {
		p := strings.Trim(m[1], "`\"'")
		if !hasImageExtension(p) || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

// ExtractFileProtocolPaths scans text for file:///... image references
// (plain, quoted, or inside markdown image syntax) and returns the
// normalized absolute paths, de-duplicated, order preserved.
func ExtractFileProtocolPaths(text string) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, m := range fileProtocolRE.FindAllStringSubmatch(text, -1) {
		p := filepath.Clean(strings.Trim(m[1], "`\"'"))
		if !hasImageExtension(p) || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

func hasImageExtension(path string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// mimeForPath returns the mime type for an image path, defaulting to
// image/png for unknown extensions.
func mimeForPath(path string) string {
	if mime, ok := imageExtensions[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return "image/png"
}

// MediaResolver reads agent-produced images from disk under a strict
// path allow-list. Everything fails closed: a disallowed path, an
// unreadable file, or an oversized payload yields no result rather
// than an error.
type MediaResolver struct {
	// AllowedRoots are the only directories images may be read from.
	AllowedRoots []string
	// MaxBytes caps the inlined payload size.
	MaxBytes int64
	// readFile is swappable for tests; defaults to os.ReadFile.
	readFile func(string) ([]byte, error)
}

// NewMediaResolver returns a resolver with the default allow-list and
// size cap.
func NewMediaResolver() *MediaResolver {
	return &MediaResolver{
		AllowedRoots: []string{"/tmp", "/home"},
		MaxBytes:     maxInlineImageBytes,
		readFile:     os.ReadFile,
	}
}

// Allowed reports whether path resolves to a location strictly inside
// one of the allowed roots. The check runs on the canonical absolute
// path with symlinks resolved, so neither traversal sequences nor
// symlinks can escape a root.
func (r *MediaResolver) Allowed(path string) bool {
	if !filepath.IsAbs(path) {
		return false
	}
	cleaned := canonicalPath(path)
	for _, root := range r.AllowedRoots {
		root = canonicalPath(root)
		if cleaned != root && strings.HasPrefix(cleaned, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// canonicalPath resolves symlinks when the path exists on disk and
// falls back to the lexically cleaned path otherwise. A nonexistent
// path cannot be read anyway, so the fallback never widens access.
func canonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return filepath.Clean(path)
}

// ReadDataURL reads an allow-listed image and returns it as a
// data:<mime>;base64,... URL. Returns ("", false) on any failure.
func (r *MediaResolver) ReadDataURL(path string) (string, bool) {
	if !r.Allowed(path) {
		return "", false
	}
	read := r.readFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(filepath.Clean(path))
	if err != nil {
		return "", false
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return "", false
	}
	mime := mimeForPath(path)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), true
}
