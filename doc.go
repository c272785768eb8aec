// Package mimekit identifies the MIME type of local files and remote
// objects from their content, with extension lookup as a fallback.
//
// MimeKit reads a small prefix of the source (12 bytes by default),
// compares it against a table of content signatures, and only consults
// the file extension when the bytes are unreadable or match nothing.
// Resolution never fails: a source that cannot be read degrades to
// extension lookup and finally to [DefaultMimeType], with the read
// error reported on the [Detection] for callers that care.
//
// # Detection Pipeline
//
// A [Resolver] works through four tiers and stops at the first answer:
//
//   - Override rules matched against the source's base name
//   - Content signatures matched against the sniffed prefix
//   - Extension lookup on the source name
//   - [DefaultMimeType] (application/octet-stream)
//
// Signature matches are final. Content wins over the extension even
// when the two disagree, so a JPEG stored as notes.txt still resolves
// to image/jpeg.
//
// # Basic Usage
//
//	ctx := context.Background()
//
//	// Sniff a local file
//	mimeType := mimekit.GetMimeType(ctx, "report.pdf")
//
//	// Remote sources are fetched with a ranged GET
//	mimeType = mimekit.GetMimeType(ctx, "https://cdn.example.com/photo.jpg")
//
//	// Category helpers resolve and classify in one step
//	if mimekit.IsImage(ctx, "upload.bin") {
//	    // Handle image
//	}
//
// The package-level functions share a global resolver configured from
// the environment. Construct instances explicitly when different
// components need different tables:
//
//	r, err := mimekit.New(&mimekit.Config{SniffLen: 32})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mimeType := r.GetMimeType(ctx, "archive.bin")
//
// # Detection Results
//
// [Resolver.Resolve] reports how the answer was derived along with any
// read error that forced a fallback:
//
//	det := r.Resolve(ctx, "mislabeled.txt")
//	if det.Matched() {
//	    // Content signature match, det.MIME is authoritative
//	}
//	if det.AcquisitionFailed() {
//	    // det.MIME came from the name alone, det.Err says why
//	}
//
// # Custom Tables
//
// Signatures, extension mappings, and override rules can be supplied
// per resolver:
//
//	r, err := mimekit.New(cfg,
//	    mimekit.WithSignatures(append(mimekit.DefaultSignatures(), mimekit.ArchiveSignatures()...)...),
//	    mimekit.WithExtensions(mimekit.ExtensionMapping{Ext: "md", MIME: "text/markdown"}),
//	    mimekit.WithOverride("*.gotmpl", "text/x-go-template"),
//	)
//
// Extension tables can also be loaded from a file in the standard
// mime.types format, optionally reloaded on change:
//
//	cfg := &mimekit.Config{
//	    TypesFile:      "/etc/mime.types",
//	    WatchTypesFile: true,
//	}
//
// # Fetchers
//
// Sources are read through [Fetcher] implementations selected by
// scheme. Local paths and file:// use [FileFetcher]; http:// and
// https:// use [HTTPFetcher], which asks for only the sniffed prefix
// via a Range header. Additional schemes can be registered globally
// with [RegisterFetcher] or injected per resolver:
//
//	mem := mimekit.NewMemoryFetcher()
//	mem.Put("mem://avatars/1", pngBytes)
//
//	r, err := mimekit.New(cfg, mimekit.WithFetcher("mem", mem))
//	mimeType := r.GetMimeType(ctx, "mem://avatars/1")
//
// # Caching
//
// Successful detections can be cached per source. Enable the built-in
// memory cache via configuration, or share one [Cache] between
// resolvers; keys are namespaced by a fingerprint of the resolver's
// tables so differently configured resolvers never collide:
//
//	cache := mimekit.NewMemoryCache()
//	r1, _ := mimekit.New(cfg1, mimekit.WithCache(cache))
//	r2, _ := mimekit.New(cfg2, mimekit.WithCache(cache))
//
// # Error Handling
//
// Resolution itself never returns an error, but fetchers and
// constructors report failures with sentinel errors and [SourceError]:
//
//	det := r.Resolve(ctx, "missing.mp3")
//	if mimekit.IsNotExist(det.Err) {
//	    // Name-based fallback, the source was absent
//	}
//
//	var srcErr *mimekit.SourceError
//	if errors.As(det.Err, &srcErr) {
//	    fmt.Printf("Operation: %s, Source: %s\n", srcErr.Op, srcErr.Source)
//	}
//
// # Configuration
//
// MimeKit can be configured via environment variables with the
// MIMEKIT_ prefix, or programmatically via the [Config] struct:
//
//	cfg := &mimekit.Config{
//	    SniffLen:     64,
//	    HTTPTimeout:  10,
//	    CacheEnabled: true,
//	}
//	r, err := mimekit.New(cfg)
package mimekit
