package geocode

import (
	"regexp"
	"strings"
)

// Vietnamese administrative-unit keywords are collapsed into comma
// separators so the geocoder sees "street, ward, district" style input.
var (
	wardPattern     = regexp.MustCompile(`\s+(phường|xã|thị trấn)\s+`)
	districtPattern = regexp.MustCompile(`\s+(quận|huyện|thành phố|tỉnh|tp)\s+`)
)

// streetKeywords mark where the street-level part of an address begins.
var streetKeywords = []string{
	"đường",
	"phố",
	"đ.",
	"hẻm",
	"ngõ",
	"ngách",
	"tỉnh lộ",
	"quốc lộ",
}

func cleanAdministrative(s string) string {
	s = strings.ToLower(s)
	s = wardPattern.ReplaceAllString(s, ", ")
	s = districtPattern.ReplaceAllString(s, ", ")
	return s
}

// streetPart truncates a cleaned address to start at the first street
// keyword, discarding house-hunting noise like city or ward prefixes. The
// input is returned unchanged when no keyword is present.
func streetPart(clean string) string {
	for _, kw := range streetKeywords {
		if idx := strings.Index(clean, kw); idx != -1 {
			return clean[idx:]
		}
	}
	return clean
}

// lastAdminSegments joins the last n non-empty comma segments, assumed to be
// the ward/district tail of the address. ok is false when there are fewer
// than n segments to work with.
func lastAdminSegments(clean string, n int) (string, bool) {
	parts := []string{}
	for _, p := range strings.Split(clean, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) < n {
		return "", false
	}
	return strings.Join(parts[len(parts)-n:], ", "), true
}
