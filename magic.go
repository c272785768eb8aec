package mimekit

// riffMask pins the RIFF tag and the format tag at offset 8 while
// skipping the four chunk-size bytes between them.
var riffMask = []byte{
	0xFF, 0xFF, 0xFF, 0xFF,
	0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0xFF,
}

// builtinSignatures is the default detection table. Group order is part
// of the contract: the matcher returns the first group with a matching
// signature, so earlier entries win when patterns could overlap.
var builtinSignatures = []SignatureGroup{
	// Documents
	{MIME: "application/pdf", Signatures: []Signature{
		{Bytes: []byte{0x25, 0x50, 0x44, 0x46}}, // %PDF
	}},

	// Images
	{MIME: "image/jpeg", Signatures: []Signature{
		{Bytes: []byte{0xFF, 0xD8, 0xFF, 0xE0}}, // JFIF
		{Bytes: []byte{0xFF, 0xD8, 0xFF, 0xE1}}, // EXIF
		{Bytes: []byte{0xFF, 0xD8, 0xFF, 0xE8}}, // SPIFF
	}},
	{MIME: "image/png", Signatures: []Signature{
		{Bytes: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	}},
	{MIME: "image/gif", Signatures: []Signature{
		{Bytes: []byte("GIF87a")},
		{Bytes: []byte("GIF89a")},
	}},

	// Audio
	{MIME: "audio/mpeg", Signatures: []Signature{
		{Bytes: []byte("ID3")},      // MP3 with ID3 tag
		{Bytes: []byte{0xFF, 0xFB}}, // MP3 frame sync
	}},

	// Video
	{MIME: "video/mp4", Signatures: []Signature{
		{Bytes: []byte("ftyp"), Offset: 4}, // ISO base media file type box
		{Bytes: []byte("mp42"), Offset: 8},
	}},
	{MIME: "video/webm", Signatures: []Signature{
		{Bytes: []byte{0x1A, 0x45, 0xDF, 0xA3}}, // EBML
	}},

	// RIFF containers share the same 4-byte prefix; the mask skips the
	// chunk size so one signature covers prefix and format tag together.
	{MIME: "image/webp", Signatures: []Signature{
		{Bytes: []byte("RIFF\x00\x00\x00\x00WEBP"), Mask: riffMask},
	}},
	{MIME: "audio/wav", Signatures: []Signature{
		{Bytes: []byte("RIFF\x00\x00\x00\x00WAVE"), Mask: riffMask},
	}},
	{MIME: "video/x-msvideo", Signatures: []Signature{
		{Bytes: []byte("RIFF\x00\x00\x00\x00AVI "), Mask: riffMask},
	}},
	{MIME: "audio/ogg", Signatures: []Signature{
		{Bytes: []byte("OggS")},
	}},
}

// archiveSignatures is an opt-in extension of the default table. Office
// documents are ZIP containers, so a default ZIP group would claim .docx
// and .xlsx content before extension lookup ever runs; callers who want
// archive detection pass these via WithSignatures.
var archiveSignatures = []SignatureGroup{
	{MIME: "application/zip", Signatures: []Signature{
		{Bytes: []byte{0x50, 0x4B, 0x03, 0x04}},
	}},
	{MIME: "application/gzip", Signatures: []Signature{
		{Bytes: []byte{0x1F, 0x8B}},
	}},
	{MIME: "application/x-rar-compressed", Signatures: []Signature{
		{Bytes: []byte("Rar!\x1a\x07")},
	}},
	{MIME: "application/x-7z-compressed", Signatures: []Signature{
		{Bytes: []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}},
	}},
}

// defaultDetector backs package-level detection. The built-in table is
// static data, so construction cannot fail.
var defaultDetector = mustDetector(builtinSignatures...)

// DefaultSignatures returns a copy of the built-in signature table,
// suitable as a starting point for a custom Detector.
func DefaultSignatures() []SignatureGroup {
	return copySignatureGroups(builtinSignatures)
}

// ArchiveSignatures returns a copy of the opt-in archive signature set.
func ArchiveSignatures() []SignatureGroup {
	return copySignatureGroups(archiveSignatures)
}

// DetectBytes matches buf against the built-in signature table and
// returns the detected MIME type, or false when no signature matches.
func DetectBytes(buf []byte) (string, bool) {
	return defaultDetector.Detect(buf)
}

func copySignatureGroups(groups []SignatureGroup) []SignatureGroup {
	out := make([]SignatureGroup, len(groups))
	for i, g := range groups {
		sigs := make([]Signature, len(g.Signatures))
		for j, s := range g.Signatures {
			sigs[j] = Signature{
				Bytes:  append([]byte(nil), s.Bytes...),
				Offset: s.Offset,
			}
			if s.Mask != nil {
				sigs[j].Mask = append([]byte(nil), s.Mask...)
			}
		}
		out[i] = SignatureGroup{MIME: g.MIME, Signatures: sigs}
	}
	return out
}
