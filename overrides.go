package mimekit

import (
	"fmt"

	"github.com/gobwas/glob"
)

// OverrideRule forces a MIME type for sources whose base name matches a
// glob pattern. Rules run before any content is read, in declaration
// order.
type OverrideRule struct {
	Pattern string
	MIME    string
}

// override is a compiled rule.
type override struct {
	pattern string
	mime    string
	g       glob.Glob
}

// compileOverrides validates and compiles rules. A bad pattern or an
// empty MIME type is a construction-time defect.
func compileOverrides(rules []OverrideRule) ([]override, error) {
	if len(rules) == 0 {
		return nil, nil
	}
	out := make([]override, 0, len(rules))
	for _, r := range rules {
		if r.MIME == "" {
			return nil, fmt.Errorf("%w: override %q has an empty MIME type", ErrInvalidConfig, r.Pattern)
		}
		g, err := glob.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: override pattern %q: %v", ErrInvalidConfig, r.Pattern, err)
		}
		out = append(out, override{pattern: r.Pattern, mime: r.MIME, g: g})
	}
	return out, nil
}

func matchOverride(rules []override, name string) (string, bool) {
	for _, r := range rules {
		if r.g.Match(name) {
			return r.mime, true
		}
	}
	return "", false
}
