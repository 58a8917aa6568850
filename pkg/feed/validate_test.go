package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckItemsFileValid(t *testing.T) {
	path := writeFile(t, ItemsFilename, `[
    {
        "author": "Pat Writer",
        "description": "A real post",
        "guid": "abc-123",
        "link": "https://example.com/posts/1",
        "pubDate": "Thu, 14 Mar 2024 09:26:53 -0500",
        "title": "First post"
    }
]`)

	report := CheckItemsFile(path)
	if !report.OK() {
		t.Errorf("CheckItemsFile() problems = %v, want none", report.Problems)
	}
}

func TestCheckItemsFileTemplateValues(t *testing.T) {
	path := writeFile(t, ItemsFilename, `[
    {
        "author": "AUTHOR",
        "description": "DESCRIPTION",
        "link": "https://example.com/posts/1",
        "pubDate": "Thu, 14 Mar 2024 09:26:53 -0500",
        "title": "TITLE"
    }
]`)

	report := CheckItemsFile(path)
	if report.OK() {
		t.Fatal("CheckItemsFile() = ok, want template-value problems")
	}
	joined := strings.Join(report.Problems, "\n")
	for _, field := range []string{"title", "description", "author"} {
		if !strings.Contains(joined, field+" still holds the template value") {
			t.Errorf("problems missing template report for %s:\n%s", field, joined)
		}
	}
}

func TestCheckItemsFileShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantIn  string
	}{
		{"not an array", `{"title": "x"}`, "schema"},
		{"empty array", `[]`, "schema"},
		{"missing field", `[{"title": "x"}]`, "schema"},
		{"not json", `{nope`, "not valid JSON"},
		{"wrong type", `[{"author": 1, "description": "d", "link": "l", "pubDate": "p", "title": "t"}]`, "schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CheckItemsFile(writeFile(t, ItemsFilename, tt.content))
			if report.OK() {
				t.Fatal("CheckItemsFile() = ok, want problems")
			}
			if !strings.Contains(strings.Join(report.Problems, "\n"), tt.wantIn) {
				t.Errorf("problems = %v, want one containing %q", report.Problems, tt.wantIn)
			}
		})
	}
}

func TestCheckItemsFileBadLinkAndDate(t *testing.T) {
	path := writeFile(t, ItemsFilename, `[
    {
        "author": "Pat Writer",
        "description": "A real post",
        "link": "not a url",
        "pubDate": "whenever",
        "title": "First post"
    }
]`)

	report := CheckItemsFile(path)
	joined := strings.Join(report.Problems, "\n")
	if !strings.Contains(joined, "link must be a URL") {
		t.Errorf("problems missing link report:\n%s", joined)
	}
	if !strings.Contains(joined, "not an RFC 2822 date") {
		t.Errorf("problems missing pubDate report:\n%s", joined)
	}
}

func TestCheckChannelFile(t *testing.T) {
	good := writeFile(t, RootFilename, `{
    "description": "Notes on things",
    "link": "https://example.com/",
    "title": "Example Feed"
}`)
	if report := CheckChannelFile(good); !report.OK() {
		t.Errorf("CheckChannelFile() problems = %v, want none", report.Problems)
	}

	missing := writeFile(t, RootFilename, `{"title": "Example Feed"}`)
	if report := CheckChannelFile(missing); report.OK() {
		t.Error("CheckChannelFile() = ok, want schema problems")
	}

	badEditor := writeFile(t, RootFilename, `{
    "description": "Notes",
    "link": "https://example.com/",
    "managingEditor": "not-an-email",
    "title": "Example Feed"
}`)
	report := CheckChannelFile(badEditor)
	if report.OK() {
		t.Fatal("CheckChannelFile() = ok, want email problem")
	}
	if !strings.Contains(strings.Join(report.Problems, "\n"), "managingEditor must be an email") {
		t.Errorf("problems = %v, want managingEditor email report", report.Problems)
	}
}

func TestCheckItemsFileMissing(t *testing.T) {
	report := CheckItemsFile(filepath.Join(t.TempDir(), ItemsFilename))
	if report.OK() {
		t.Error("CheckItemsFile() = ok for a missing file, want a read problem")
	}
}
