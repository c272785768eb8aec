package mimekit

import "strings"

// ExtensionMapping associates a lowercase file extension (without the
// leading dot) with its canonical MIME type.
type ExtensionMapping struct {
	Ext  string
	MIME string
}

// builtinExtensions is the default extension table. Declaration order is
// part of the contract: reverse lookup returns the first entry whose MIME
// type matches, which is why jpg wins over jpeg for image/jpeg.
var builtinExtensions = []ExtensionMapping{
	{"pdf", "application/pdf"},
	{"doc", "application/msword"},
	{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	{"txt", "text/plain"},
	{"rtf", "application/rtf"},
	{"jpg", "image/jpeg"},
	{"jpeg", "image/jpeg"},
	{"png", "image/png"},
	{"gif", "image/gif"},
	{"webp", "image/webp"},
	{"svg", "image/svg+xml"},
	{"mp3", "audio/mpeg"},
	{"wav", "audio/wav"},
	{"ogg", "audio/ogg"},
	{"m4a", "audio/mp4"},
	{"mp4", "video/mp4"},
	{"webm", "video/webm"},
	{"avi", "video/x-msvideo"},
	{"mov", "video/quicktime"},
	{"mkv", "video/x-matroska"},
}

// extensionSet is an immutable lookup view over ordered extension
// mappings. Resolvers swap in a fresh set when a types file reloads.
type extensionSet struct {
	entries []ExtensionMapping
	index   map[string]string
}

// newExtensionSet builds the forward index. Entries are normalized to
// lowercase and the first occurrence of an extension wins, mirroring the
// first-match rule of the reverse lookup.
func newExtensionSet(entries []ExtensionMapping) *extensionSet {
	s := &extensionSet{
		entries: make([]ExtensionMapping, 0, len(entries)),
		index:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		ext := normalizeExtension(e.Ext)
		if ext == "" || e.MIME == "" {
			continue
		}
		s.entries = append(s.entries, ExtensionMapping{Ext: ext, MIME: e.MIME})
		if _, ok := s.index[ext]; !ok {
			s.index[ext] = e.MIME
		}
	}
	return s
}

func (s *extensionSet) typeByExtension(ext string) (string, bool) {
	ext = normalizeExtension(ext)
	if ext == "" {
		return "", false
	}
	mimeType, ok := s.index[ext]
	return mimeType, ok
}

func (s *extensionSet) extensionByType(mimeType string) (string, bool) {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if mimeType == "" {
		return "", false
	}
	for _, e := range s.entries {
		if strings.ToLower(e.MIME) == mimeType {
			return "." + e.Ext, true
		}
	}
	return "", false
}

// normalizeExtension lowercases ext and strips a leading dot.
func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	ext = strings.TrimPrefix(ext, ".")
	return strings.ToLower(ext)
}

var builtinExtensionSet = newExtensionSet(builtinExtensions)

// DefaultExtensions returns a copy of the built-in extension table in
// declaration order.
func DefaultExtensions() []ExtensionMapping {
	out := make([]ExtensionMapping, len(builtinExtensions))
	copy(out, builtinExtensions)
	return out
}

// TypeByExtension returns the MIME type registered for a file extension
// in the global resolver's table. Lookup is case-insensitive and accepts
// the extension with or without its leading dot.
func TypeByExtension(ext string) (string, bool) {
	return defaultOrFallback().TypeByExtension(ext)
}

// GetMimeExtension returns the canonical file extension, with leading
// dot, for a MIME type in the global resolver's table. When several
// extensions map to the same MIME type the first one in declaration
// order wins: GetMimeExtension("image/jpeg") returns ".jpg", not
// ".jpeg". The MIME comparison is case-insensitive.
func GetMimeExtension(mimeType string) (string, bool) {
	return defaultOrFallback().GetMimeExtension(mimeType)
}
