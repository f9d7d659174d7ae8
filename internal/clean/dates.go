package clean

import (
	"regexp"
	"time"
)

// datePatterns are tried in priority order, most locale-qualified first,
// ending with ISO-8601. Matching is structural and may hit anywhere in the
// string; only the first capturing group of the first matching pattern is
// parsed. A match whose calendar parse fails is final; later patterns are
// not consulted.
var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`(?:\w+,\s+)?(\d{1,2}\s+\w{3}\s+\d{4})`), "2 Jan 2006"}, // Mon, 01 May 2023
	{regexp.MustCompile(`(\d{1,2}\s+\w{3}\s+\d{4})`), "2 Jan 2006"},             // 01 May 2023
	{regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`), "2006-01-02"},                   // 2023-05-01
}

// ExtractDate parses a loosely-structured feed date string into a calendar
// date. ok is false when no pattern matches, or when the matched substring
// is not a real date (day 32, unknown month). It never panics and never
// guesses.
func ExtractDate(raw string) (time.Time, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		t, err := time.Parse(p.layout, m[1])
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}
