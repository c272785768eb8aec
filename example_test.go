package mimekit_test

import (
	"context"
	"fmt"

	"github.com/gobeaver/mimekit"
)

func ExampleDetectBytes() {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	mimeType, ok := mimekit.DetectBytes(header)
	fmt.Println(mimeType, ok)

	_, ok = mimekit.DetectBytes([]byte("just some text"))
	fmt.Println(ok)
	// Output:
	// image/png true
	// false
}

func ExampleNewDetector() {
	// A custom table detects formats the built-in one does not.
	detector, err := mimekit.NewDetector(
		mimekit.SignatureGroup{
			MIME:       "application/wasm",
			Signatures: []mimekit.Signature{{Bytes: []byte{0x00, 0x61, 0x73, 0x6D}}},
		},
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	mimeType, _ := detector.Detect([]byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00})
	fmt.Println(mimeType)
	// Output:
	// application/wasm
}

func ExampleResolver_Resolve() {
	ctx := context.Background()

	// A memory fetcher stands in for real storage.
	mem := mimekit.NewMemoryFetcher()
	mem.Put("mem://uploads/mislabeled.txt", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'})

	r, err := mimekit.New(&mimekit.Config{}, mimekit.WithFetcher("mem", mem))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer r.Close()

	// Content wins over the file extension.
	det := r.Resolve(ctx, "mem://uploads/mislabeled.txt")
	fmt.Println(det.MIME, det.Matched())

	// Unreadable sources degrade to the extension.
	det = r.Resolve(ctx, "mem://uploads/absent.mp3")
	fmt.Println(det.MIME, det.Matched(), mimekit.IsNotExist(det.Err))
	// Output:
	// image/jpeg true
	// audio/mpeg false true
}

func ExampleResolver_GetMimeType() {
	ctx := context.Background()

	mem := mimekit.NewMemoryFetcher()
	mem.Put("mem://clips/intro", []byte{0x1A, 0x45, 0xDF, 0xA3, 0x9F, 0x42, 0x86, 0x81})

	r, err := mimekit.New(&mimekit.Config{}, mimekit.WithFetcher("mem", mem))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer r.Close()

	fmt.Println(r.GetMimeType(ctx, "mem://clips/intro"))
	fmt.Println(r.GetMimeType(ctx, "mem://clips/unknown"))
	// Output:
	// video/webm
	// application/octet-stream
}

func ExampleWithOverride() {
	ctx := context.Background()

	r, err := mimekit.New(&mimekit.Config{},
		mimekit.WithOverride("*.gotmpl", "text/x-go-template"),
	)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer r.Close()

	// Overrides answer from the name alone; no bytes are read.
	det := r.Resolve(ctx, "layouts/base.gotmpl")
	fmt.Println(det.MIME, det.Method)
	// Output:
	// text/x-go-template override
}

func ExampleGetMimeExtension() {
	// The first declared extension wins the reverse lookup.
	ext, _ := mimekit.GetMimeExtension("image/jpeg")
	fmt.Println(ext)

	ext, _ = mimekit.GetMimeExtension("video/x-matroska")
	fmt.Println(ext)

	_, ok := mimekit.GetMimeExtension("application/x-unknown")
	fmt.Println(ok)
	// Output:
	// .jpg
	// .mkv
	// false
}

func ExampleIsDocumentType() {
	fmt.Println(mimekit.IsDocumentType("application/pdf"))
	fmt.Println(mimekit.IsDocumentType("text/plain"))
	fmt.Println(mimekit.IsDocumentType("text/html"))
	// Output:
	// true
	// true
	// false
}

func ExampleIsNotExist() {
	ctx := context.Background()

	r, err := mimekit.New(&mimekit.Config{})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer r.Close()

	det := r.Resolve(ctx, "no-such-dir/track.mp3")
	if mimekit.IsNotExist(det.Err) {
		fmt.Println("fell back to the name:", det.MIME)
	}
	// Output:
	// fell back to the name: audio/mpeg
}
