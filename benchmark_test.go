package mimekit

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func BenchmarkDetectBytes(b *testing.B) {
	buffers := map[string][]byte{
		"pdf":      []byte("%PDF-1.7 here"),
		"jpeg":     {0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01},
		"webp":     []byte("RIFF\x24\x08\x00\x00WEBP"),
		"mp4":      {0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'i', 's', 'o', 'm'},
		"no_match": []byte("hello, world"),
	}

	for name, buf := range buffers {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				DetectBytes(buf)
			}
		})
	}
}

func BenchmarkResolve(b *testing.B) {
	tmpDir := b.TempDir()
	path := filepath.Join(tmpDir, "logo.bin")
	if err := os.WriteFile(path, pngHeader, 0o644); err != nil {
		b.Fatalf("WriteFile failed: %v", err)
	}
	missing := filepath.Join(tmpDir, "absent.mp3")

	configs := map[string]*Config{
		"basic":       {},
		"with_cache":  {CacheEnabled: true},
		"legacy_mode": {LegacyExtensions: true},
	}

	for name, cfg := range configs {
		b.Run(name, func(b *testing.B) {
			r, err := New(cfg)
			if err != nil {
				b.Fatalf("New failed: %v", err)
			}
			defer r.Close()

			ctx := context.Background()

			b.Run("signature", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					r.Resolve(ctx, path)
				}
			})

			b.Run("extension_fallback", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					r.Resolve(ctx, missing)
				}
			})
		})
	}
}

func BenchmarkResolveOverride(b *testing.B) {
	r, err := New(&Config{}, WithOverride("*.gotmpl", "text/x-go-template"))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	defer r.Close()

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve(ctx, "layouts/base.gotmpl")
	}
}

func BenchmarkConfigCreation(b *testing.B) {
	os.Setenv("BEAVER_MIMEKIT_SNIFF_LEN", "32")
	os.Setenv("BEAVER_MIMEKIT_CACHE_ENABLED", "true")
	defer func() {
		os.Unsetenv("BEAVER_MIMEKIT_SNIFF_LEN")
		os.Unsetenv("BEAVER_MIMEKIT_CACHE_ENABLED")
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := GetConfig()
		if err != nil {
			b.Fatalf("GetConfig failed: %v", err)
		}
	}
}

func BenchmarkResolverCreation(b *testing.B) {
	configs := map[string]*Config{
		"minimal":    {},
		"with_cache": {CacheEnabled: true},
	}

	for name, cfg := range configs {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := New(cfg)
				if err != nil {
					b.Fatalf("New failed: %v", err)
				}
				r.Close()
			}
		})
	}
}
