package feed

import (
	"testing"
	"time"

	"github.com/tylerneylon/rss/pkg/errors"
)

func TestNetDateRoundTrip(t *testing.T) {
	now := time.Date(2024, time.July, 4, 16, 20, 0, 0, time.FixedZone("", 2*3600))
	s := NetDate(now)

	got, err := ParseNetDate(s)
	if err != nil {
		t.Fatalf("ParseNetDate(%q) error = %v", s, err)
	}
	if !got.Equal(now) {
		t.Errorf("round trip = %v, want %v", got, now)
	}
}

func TestParseNetDateNamedZone(t *testing.T) {
	got, err := ParseNetDate("Mon, 02 Jan 2006 15:04:05 GMT")
	if err != nil {
		t.Fatalf("ParseNetDate() error = %v", err)
	}
	if got.Year() != 2006 || got.Month() != time.January {
		t.Errorf("ParseNetDate() = %v", got)
	}
}

func TestParseNetDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2024-03-14", "14 Mar 2024"} {
		if _, err := ParseNetDate(s); !errors.Is(err, errors.ErrCodeMalformedDate) {
			t.Errorf("ParseNetDate(%q) error = %v, want MALFORMED_DATE", s, err)
		}
	}
}
