package scraper

import (
	"net"
	"net/url"
	"strings"
	"time"
)

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "JobScoutScraper/0.1",
		"Accept-Language": "en-US,en;q=0.9",
	}
}

func hostFromBaseURL(base string) string {
	base = strings.TrimSpace(base)
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	host := u.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func normalizeURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return u
	}
	parsed.Fragment = ""
	return parsed.String()
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var postedDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"Jan 2, 2006",
	"02 Jan 2006",
}

// parsePostedDate handles the absolute formats boards use plus the common
// relative forms ("today", "N days ago"). Unparseable input yields the
// zero time; the repository fills in now() on insert.
func parsePostedDate(raw string, now time.Time) time.Time {
	orig := cleanText(raw)
	raw = strings.ToLower(orig)
	if raw == "" {
		return time.Time{}
	}

	switch {
	case raw == "today" || raw == "just posted":
		return now.UTC().Truncate(24 * time.Hour)
	case raw == "yesterday":
		return now.UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	}

	if strings.HasSuffix(raw, "ago") {
		fields := strings.Fields(raw)
		if len(fields) >= 3 {
			n := 0
			for _, r := range fields[0] {
				if r < '0' || r > '9' {
					n = -1
					break
				}
				n = n*10 + int(r-'0')
			}
			if n >= 0 {
				switch {
				case strings.HasPrefix(fields[1], "day"):
					return now.UTC().AddDate(0, 0, -n).Truncate(24 * time.Hour)
				case strings.HasPrefix(fields[1], "week"):
					return now.UTC().AddDate(0, 0, -7*n).Truncate(24 * time.Hour)
				case strings.HasPrefix(fields[1], "month"):
					return now.UTC().AddDate(0, -n, 0).Truncate(24 * time.Hour)
				case strings.HasPrefix(fields[1], "hour"), strings.HasPrefix(fields[1], "minute"):
					return now.UTC().Truncate(24 * time.Hour)
				}
			}
		}
	}

	for _, layout := range postedDateLayouts {
		if t, err := time.Parse(layout, orig); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
