package app

import (
	"net/url"
	"strings"
)

// dbNameFromURL extracts the database name from a postgres connection string,
// accepting both URL form (postgres://.../name) and key=value DSN form
// (dbname=name). Returns "" when no name can be found.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, kv := range strings.Fields(raw) {
		key, value, found := strings.Cut(kv, "=")
		if !found || key != "dbname" {
			continue
		}
		if name := strings.Trim(value, `"' `); name != "" {
			return name
		}
	}

	return ""
}
