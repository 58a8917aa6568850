package feed

import (
	"time"

	"github.com/tylerneylon/rss/pkg/errors"
)

// netDateFormat is the RFC 2822 date layout RSS readers expect in
// pubDate fields, e.g. "Mon, 02 Jan 2006 15:04:05 -0700".
const netDateFormat = time.RFC1123Z

// NetDate formats t as an RFC 2822 date string for a pubDate field.
func NetDate(t time.Time) string {
	return t.Format(netDateFormat)
}

// ParseNetDate parses a pubDate field. Both numeric-zone and named-zone
// forms are accepted, since hand-edited files carry either.
func ParseNetDate(s string) (time.Time, error) {
	for _, layout := range []string{netDateFormat, time.RFC1123} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.ErrCodeMalformedDate, "pubDate %q is not an RFC 2822 date", s)
}
