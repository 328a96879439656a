package usecase

import (
	"strconv"
	"strings"
)

// Spreadsheet exports are messy: integer columns arrive as "12", "12.0", or
// blank, and dashes stand in for "did not play". The parsers below are
// deliberately permissive and return nil for anything unusable instead of
// failing the whole row.

func toIntPtr(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		n := int64(f)
		return &n
	}
	return nil
}

func toFloatPtr(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "-" {
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return &f
	}
	return nil
}

func toStringPtr(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}
