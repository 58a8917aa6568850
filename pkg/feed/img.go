package feed

import (
	"fmt"
	"strings"
)

// imgPlaceholder is the src value the author replaces after wrapping.
const imgPlaceholder = "IMG_SRC"

// WrapImage wraps a description in a CDATA block with an empty img tag,
// ready for the author to point at an image. Descriptions already carrying
// a CDATA block are returned unchanged.
func WrapImage(description string) string {
	if strings.Contains(description, "CDATA") {
		return description
	}
	return fmt.Sprintf(`<![CDATA[%s <img src="%s">]]>`, description, imgPlaceholder)
}

// WrapImages applies WrapImage to every item in place and returns how
// many descriptions changed.
func WrapImages(items []Item) int {
	changed := 0
	for i := range items {
		wrapped := WrapImage(items[i].Description)
		if wrapped != items[i].Description {
			items[i].Description = wrapped
			changed++
		}
	}
	return changed
}
