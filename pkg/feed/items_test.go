package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tylerneylon/rss/pkg/errors"
)

func TestNewTemplateItem(t *testing.T) {
	now := time.Date(2024, time.March, 14, 9, 26, 53, 0, time.FixedZone("", -5*3600))
	item := NewTemplateItem(now, "", "")

	if item.Title != TemplateTitle || item.Link != TemplateLink ||
		item.Description != TemplateDescription || item.Author != TemplateAuthor {
		t.Errorf("template item has customized fields: %+v", item)
	}
	if item.GUID == "" {
		t.Error("template item has no guid")
	}
	if item.PubDate != "Thu, 14 Mar 2024 09:26:53 -0500" {
		t.Errorf("PubDate = %q", item.PubDate)
	}
}

func TestNewTemplateItemDefaults(t *testing.T) {
	item := NewTemplateItem(time.Now(), "Pat Writer", "https://example.com/posts/")
	if item.Author != "Pat Writer" {
		t.Errorf("Author = %q", item.Author)
	}
	if item.Link != "https://example.com/posts/" {
		t.Errorf("Link = %q", item.Link)
	}
	if item.Title != TemplateTitle {
		t.Errorf("Title = %q, want the placeholder", item.Title)
	}
}

func TestTemplateFields(t *testing.T) {
	item := NewTemplateItem(time.Now(), "", "")
	got := item.TemplateFields()
	want := []string{"title", "link", "description", "author"}
	if len(got) != len(want) {
		t.Fatalf("TemplateFields() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TemplateFields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	item.Title = "A real title"
	item.Author = "Someone"
	got = item.TemplateFields()
	if len(got) != 2 || got[0] != "link" || got[1] != "description" {
		t.Errorf("TemplateFields() = %v, want [link description]", got)
	}
}

func TestItemsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ItemsFilename)
	items := []Item{
		{
			Author:      "Pat Writer",
			Description: "A post about <things> & stuff",
			GUID:        "abc-123",
			Link:        "https://example.com/posts/1",
			PubDate:     "Thu, 14 Mar 2024 09:26:53 -0500",
			Title:       "First post",
		},
	}

	if err := WriteItems(path, items); err != nil {
		t.Fatalf("WriteItems() error = %v", err)
	}
	got, err := ReadItems(path)
	if err != nil {
		t.Fatalf("ReadItems() error = %v", err)
	}
	if len(got) != 1 || got[0] != items[0] {
		t.Errorf("round trip = %+v, want %+v", got, items)
	}
}

func TestWriteItemsFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ItemsFilename)
	items := []Item{{
		Author:      "a",
		Description: "d <b>bold</b>",
		GUID:        "g",
		Link:        "l",
		PubDate:     "p",
		Title:       "t",
	}}

	if err := WriteItems(path, items); err != nil {
		t.Fatalf("WriteItems() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	// Four-space indentation, keys in alphabetical order, HTML intact.
	if !strings.Contains(text, "\n    {") || !strings.Contains(text, "\n        \"author\"") {
		t.Errorf("output is not indented with four spaces:\n%s", text)
	}
	if strings.Index(text, `"author"`) > strings.Index(text, `"description"`) ||
		strings.Index(text, `"description"`) > strings.Index(text, `"title"`) {
		t.Errorf("keys are not in alphabetical order:\n%s", text)
	}
	if !strings.Contains(text, "<b>bold</b>") {
		t.Errorf("HTML in description was escaped:\n%s", text)
	}
	if !strings.HasSuffix(text, "\n") {
		t.Error("output does not end with a newline")
	}
}

func TestReadItemsMissing(t *testing.T) {
	_, err := ReadItems(filepath.Join(t.TempDir(), ItemsFilename))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadItems() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestReadItemsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ItemsFilename)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadItems(path)
	if !errors.Is(err, errors.ErrCodeInvalidItems) {
		t.Errorf("ReadItems() error = %v, want INVALID_ITEMS", err)
	}
}

func TestChannelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), RootFilename)
	ch := Channel{
		Description: "Notes on things",
		Language:    "en-us",
		Link:        "https://example.com/",
		Title:       "Example Feed",
	}

	if err := WriteChannel(path, ch); err != nil {
		t.Fatalf("WriteChannel() error = %v", err)
	}
	got, err := ReadChannel(path)
	if err != nil {
		t.Fatalf("ReadChannel() error = %v", err)
	}
	if got != ch {
		t.Errorf("round trip = %+v, want %+v", got, ch)
	}
}

func TestReadChannelMissing(t *testing.T) {
	_, err := ReadChannel(filepath.Join(t.TempDir(), RootFilename))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadChannel() error = %v, want FILE_NOT_FOUND", err)
	}
}
