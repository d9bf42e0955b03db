package config

import (
	"fmt"
	"strings"
)

const (
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

const (
	KindEnglish = "english"
	KindSpace   = "space"
)

// NormalizeFormat canonicalizes an output format name. An empty string
// selects the default TSV format.
func NormalizeFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format == "" {
		format = FormatTSV
	}
	switch format {
	case FormatTSV, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected %s|%s)", raw, FormatTSV, FormatJSON)
	}
}

// NormalizeKind canonicalizes a tokenizer kind name. An empty string
// selects the English rule-based tokenizer.
func NormalizeKind(raw string) (string, error) {
	kind := strings.ToLower(strings.TrimSpace(raw))
	if kind == "" {
		kind = KindEnglish
	}
	switch kind {
	case KindEnglish, KindSpace:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid tokenizer %q (expected %s|%s)", raw, KindEnglish, KindSpace)
	}
}
