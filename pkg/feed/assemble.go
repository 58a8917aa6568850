package feed

import (
	"sort"
	"time"

	"github.com/tylerneylon/rss/pkg/xmltree"
)

// Assemble builds the full RSS 2.0 document tree from channel metadata
// and the collected item files. Items are ordered newest first by
// pubDate; items whose pubDate fails to parse sort last, in file order,
// rather than being dropped. The caller supplies now for the
// lastBuildDate element, keeping assembly a pure function.
func Assemble(ch Channel, sources []Source, now time.Time) *xmltree.Node {
	channel := xmltree.Element("channel",
		xmltree.Text("title", ch.Title),
		xmltree.Text("link", ch.Link),
		xmltree.Text("description", ch.Description),
	)
	if ch.Language != "" {
		channel.Append(xmltree.Text("language", ch.Language))
	}
	if ch.Copyright != "" {
		channel.Append(xmltree.Text("copyright", ch.Copyright))
	}
	if ch.ManagingEditor != "" {
		channel.Append(xmltree.Text("managingEditor", ch.ManagingEditor))
	}
	if ch.WebMaster != "" {
		channel.Append(xmltree.Text("webMaster", ch.WebMaster))
	}
	channel.Append(xmltree.Text("lastBuildDate", NetDate(now)))

	for _, item := range orderItems(sources) {
		channel.Append(itemNode(item))
	}

	return xmltree.Element("rss", channel).WithAttr("version", "2.0")
}

// Render assembles the document and serializes it.
func Render(ch Channel, sources []Source, now time.Time) (string, error) {
	return xmltree.Render(Assemble(ch, sources, now))
}

// orderItems flattens the sources and sorts newest first. The sort is
// stable so items sharing a pubDate keep their file order.
func orderItems(sources []Source) []Item {
	var items []Item
	for _, src := range sources {
		items = append(items, src.Items...)
	}

	type dated struct {
		item Item
		when time.Time
	}
	keyed := make([]dated, len(items))
	for i, item := range items {
		keyed[i].item = item
		if t, err := ParseNetDate(item.PubDate); err == nil {
			keyed[i].when = t
		}
	}
	sort.SliceStable(keyed, func(i, j int) bool { return keyed[i].when.After(keyed[j].when) })

	for i, d := range keyed {
		items[i] = d.item
	}
	return items
}

// itemNode builds the element tree for a single item. The guid carries
// isPermaLink="false" since guids here are UUIDs, not URLs.
func itemNode(item Item) *xmltree.Node {
	n := xmltree.Element("item",
		xmltree.Text("title", item.Title),
		xmltree.Text("link", item.Link),
		xmltree.Text("description", item.Description),
		xmltree.Text("author", item.Author),
		xmltree.Text("pubDate", item.PubDate),
	)
	if item.GUID != "" {
		guid := xmltree.Text("guid", item.GUID).WithAttr("isPermaLink", "false")
		n.Append(guid)
	}
	return n
}
