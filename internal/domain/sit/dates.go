package sit

import (
	"strings"
	"time"
)

// dateLayouts covers the formats observed on fechaGeneracion/fechaVencimiento
// and fechaCobro: dd/MM/yyyy (es-MX deployments) with and without time, plus
// ISO-8601 variants some environments emit.
var dateLayouts = []string{
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a provider date string. The second return value reports
// whether parsing succeeded; callers leave the target field unset on failure
// instead of erroring out.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
