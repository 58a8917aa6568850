package xmltree

import (
	"strings"
	"testing"

	"github.com/tylerneylon/rss/pkg/errors"
)

func TestRenderShape(t *testing.T) {
	root := Element("root", Text("child", "TEXT"))

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "<?xml version='1.0' encoding='utf-8'?>\n<root>\n  <child>TEXT</child>\n</root>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderNested(t *testing.T) {
	root := Element("rss",
		Element("channel",
			Text("title", "My Feed"),
			Text("link", "https://example.com/"),
			Element("item",
				Text("title", "First post"),
			),
		),
	).WithAttr("version", "2.0")

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := strings.Join([]string{
		"<?xml version='1.0' encoding='utf-8'?>",
		`<rss version="2.0">`,
		"  <channel>",
		"    <title>My Feed</title>",
		"    <link>https://example.com/</link>",
		"    <item>",
		"      <title>First post</title>",
		"    </item>",
		"  </channel>",
		"</rss>",
		"",
	}, "\n")
	if got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderAttributeOrder(t *testing.T) {
	n := Element("enclosure").
		WithAttr("url", "https://example.com/a.mp3").
		WithAttr("length", "1234").
		WithAttr("type", "audio/mpeg")

	got, err := Render(n)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := Header + `<enclosure url="https://example.com/a.mp3" length="1234" type="audio/mpeg"></enclosure>` + "\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderEmptyNode(t *testing.T) {
	got, err := Render(Element("channel"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := Header + "<channel></channel>\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	root := Element("rss",
		Element("channel",
			Text("title", "Feed"),
			Element("item", Text("title", "a"), Text("link", "b")),
		),
	)

	first, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := Render(root)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if first != second {
		t.Error("rendering the same tree twice produced different output")
	}
}

func TestRenderStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		root *Node
	}{
		{
			name: "text and children",
			root: &Node{Tag: "item", Text: "payload", Children: []*Node{Text("title", "x")}},
		},
		{
			name: "empty tag",
			root: &Node{},
		},
		{
			name: "nil child",
			root: &Node{Tag: "channel", Children: []*Node{nil}},
		},
		{
			name: "malformed descendant",
			root: Element("rss", &Node{Tag: "item", Text: "t", Children: []*Node{Text("a", "b")}}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.root)
			if !errors.Is(err, errors.ErrCodeStructuralTree) {
				t.Errorf("Render() error = %v, want STRUCTURAL_TREE", err)
			}
		})
	}
}

func TestStructuralErrorNamesTag(t *testing.T) {
	bad := &Node{Tag: "item", Text: "payload", Children: []*Node{Text("title", "x")}}
	_, err := Render(Element("channel", bad))
	if err == nil {
		t.Fatal("Render() error = nil, want STRUCTURAL_TREE")
	}
	if !strings.Contains(err.Error(), `"item"`) {
		t.Errorf("error %q does not name the offending tag", err)
	}
}
