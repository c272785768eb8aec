package mimekit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadTypesFile reads extension mappings from a file in the standard
// mime.types format: one MIME type per line followed by its extensions,
// separated by whitespace, with # starting a comment. Returned mappings
// preserve file order, so earlier lines win lookups when a resolver
// places them ahead of the built-in table.
func LoadTypesFile(path string) ([]ExtensionMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Source: path, Err: mapOSError(err)}
	}
	defer f.Close()

	mappings, err := parseTypesFile(f)
	if err != nil {
		return nil, &SourceError{Op: "parse", Source: path, Err: err}
	}
	return mappings, nil
}

func parseTypesFile(r io.Reader) ([]ExtensionMapping, error) {
	var mappings []ExtensionMapping

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if idx := strings.IndexByte(text, '#'); idx >= 0 {
			text = text[:idx]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		mimeType := fields[0]
		if !strings.Contains(mimeType, "/") {
			return nil, fmt.Errorf("line %d: %q is not a MIME type", line, mimeType)
		}
		for _, ext := range fields[1:] {
			mappings = append(mappings, ExtensionMapping{Ext: normalizeExtension(ext), MIME: mimeType})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mappings, nil
}
