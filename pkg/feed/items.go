package feed

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tylerneylon/rss/pkg/errors"
)

// NewTemplateItem returns a fresh item with placeholder fields for the
// author to edit, a new GUID, and now as the publication date. Non-empty
// author and linkPrefix override the corresponding placeholders.
func NewTemplateItem(now time.Time, author, linkPrefix string) Item {
	item := Item{
		Author:      TemplateAuthor,
		Description: TemplateDescription,
		GUID:        uuid.NewString(),
		Link:        TemplateLink,
		PubDate:     NetDate(now),
		Title:       TemplateTitle,
	}
	if author != "" {
		item.Author = author
	}
	if linkPrefix != "" {
		item.Link = linkPrefix
	}
	return item
}

// TemplateFields returns the names of fields still holding an
// uncustomized template value.
func (it Item) TemplateFields() []string {
	var fields []string
	if it.Title == TemplateTitle {
		fields = append(fields, "title")
	}
	if it.Link == TemplateLink {
		fields = append(fields, "link")
	}
	if it.Description == TemplateDescription {
		fields = append(fields, "description")
	}
	if it.Author == TemplateAuthor {
		fields = append(fields, "author")
	}
	return fields
}

// ReadItems decodes an item file. A missing file is a FILE_NOT_FOUND
// error; malformed JSON is INVALID_ITEMS.
func ReadItems(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no %s here; run the post command first", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidItems, err, "decode %s", path)
	}
	return items, nil
}

// WriteItems encodes items to path with four-space indentation and a
// trailing newline. Fields come out alphabetically ordered because the
// Item struct declares them that way.
func WriteItems(path string, items []Item) error {
	data, err := marshalIndented(items)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode items")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// ReadChannel decodes the channel metadata file at path.
func ReadChannel(path string) (Channel, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Channel{}, errors.New(errors.ErrCodeFileNotFound,
			"no %s; the feed root needs channel metadata", path)
	}
	if err != nil {
		return Channel{}, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}

	var ch Channel
	if err := json.Unmarshal(data, &ch); err != nil {
		return Channel{}, errors.Wrap(errors.ErrCodeInvalidRoot, err, "decode %s", path)
	}
	return ch, nil
}

// WriteChannel encodes the channel metadata to path in the same style as
// item files.
func WriteChannel(path string, ch Channel) error {
	data, err := marshalIndented(ch)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode channel")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

// marshalIndented matches the historical file format: four-space indent,
// unescaped angle brackets and ampersands (descriptions hold HTML), and a
// trailing newline.
func marshalIndented(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
