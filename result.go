package mimekit

// DefaultMimeType is returned when neither content nor extension
// identifies a source.
const DefaultMimeType = "application/octet-stream"

// Method identifies which resolution tier produced a Detection.
type Method string

const (
	// MethodSignature means the content matched a signature.
	MethodSignature Method = "signature"

	// MethodOverride means a configured pattern override claimed the source.
	MethodOverride Method = "override"

	// MethodExtension means the extension table supplied the type.
	MethodExtension Method = "extension"

	// MethodDefault means resolution terminated at DefaultMimeType.
	MethodDefault Method = "default"
)

// Detection is the outcome of resolving one source. MIME is always
// non-empty; resolution itself never fails.
type Detection struct {
	// MIME is the resolved type, DefaultMimeType at worst.
	MIME string

	// Method records how the value was produced.
	Method Method

	// Err holds the acquisition failure that forced extension fallback,
	// if any. Informational: the resolver has already recovered.
	Err error
}

// Matched reports whether the content itself identified the type.
func (d Detection) Matched() bool {
	return d.Method == MethodSignature
}

// AcquisitionFailed reports whether reading the source's bytes failed
// and resolution fell back to the extension tier.
func (d Detection) AcquisitionFailed() bool {
	return d.Err != nil
}
