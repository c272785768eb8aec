package mimekit

import (
	"context"
	"strings"
)

// IsDocumentType reports whether a MIME type counts as a document:
// anything under application/ plus exactly text/plain. The test is
// prefix-only, so text/html is not a document under this rule.
func IsDocumentType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "application/") || mimeType == "text/plain"
}

// IsImageType reports whether a MIME type is an image type.
func IsImageType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}

// IsAudioType reports whether a MIME type is an audio type.
func IsAudioType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/")
}

// IsVideoType reports whether a MIME type is a video type.
func IsVideoType(mimeType string) bool {
	return strings.HasPrefix(mimeType, "video/")
}

// IsDocument resolves source and reports whether the result is a
// document type.
func (r *Resolver) IsDocument(ctx context.Context, source string) bool {
	return IsDocumentType(r.Resolve(ctx, source).MIME)
}

// IsImage resolves source and reports whether the result is an image type.
func (r *Resolver) IsImage(ctx context.Context, source string) bool {
	return IsImageType(r.Resolve(ctx, source).MIME)
}

// IsAudio resolves source and reports whether the result is an audio type.
func (r *Resolver) IsAudio(ctx context.Context, source string) bool {
	return IsAudioType(r.Resolve(ctx, source).MIME)
}

// IsVideo resolves source and reports whether the result is a video type.
func (r *Resolver) IsVideo(ctx context.Context, source string) bool {
	return IsVideoType(r.Resolve(ctx, source).MIME)
}
