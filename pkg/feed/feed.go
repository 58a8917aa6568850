// Package feed maintains the content-publishing tree behind an RSS feed.
//
// The tree layout mirrors a blog's directory structure: each post
// directory carries an rss_items.json file listing its items, and the
// tree root carries an rss_root.json file with the channel metadata.
// Building the feed walks the tree, collects every item file, validates
// the records, and assembles an RSS 2.0 document through
// [github.com/tylerneylon/rss/pkg/xmltree].
//
// This is a feed *writer*, not a reader. Records are written the way the
// files have always looked: JSON with four-space indentation and
// alphabetically ordered keys, so hand edits and tool edits diff cleanly.
package feed

// Filenames maintained in the publishing tree.
const (
	// ItemsFilename is the per-directory item file.
	ItemsFilename = "rss_items.json"

	// RootFilename is the channel metadata file at the tree root.
	RootFilename = "rss_root.json"

	// FeedFilename is the default name of the emitted feed document.
	FeedFilename = "rss.xml"
)

// Template placeholder values written into fresh item files. A record
// still holding one of these has not been customized by the author yet.
const (
	TemplateTitle       = "TITLE"
	TemplateLink        = "URL"
	TemplateDescription = "DESCRIPTION"
	TemplateAuthor      = "AUTHOR"
)

// Item is one feed entry. JSON fields are declared in alphabetical order
// so encoding/json emits them sorted, matching the historical file format.
type Item struct {
	Author      string `json:"author"      validate:"required"`
	Description string `json:"description" validate:"required"`
	GUID        string `json:"guid,omitempty"`
	Link        string `json:"link"        validate:"required,url"`
	PubDate     string `json:"pubDate"     validate:"required"`
	Title       string `json:"title"       validate:"required"`
}

// Channel is the feed-wide metadata stored in rss_root.json.
type Channel struct {
	Copyright      string `json:"copyright,omitempty"`
	Description    string `json:"description" validate:"required"`
	Language       string `json:"language,omitempty"`
	Link           string `json:"link" validate:"required,url"`
	ManagingEditor string `json:"managingEditor,omitempty" validate:"omitempty,email"`
	Title          string `json:"title" validate:"required"`
	WebMaster      string `json:"webMaster,omitempty" validate:"omitempty,email"`
}

// Source pairs an item file's path with its decoded records.
type Source struct {
	Path  string
	Items []Item
}
