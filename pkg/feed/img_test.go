package feed

import "testing"

func TestWrapImage(t *testing.T) {
	got := WrapImage("A fine post.")
	want := `<![CDATA[A fine post. <img src="IMG_SRC">]]>`
	if got != want {
		t.Errorf("WrapImage() = %q, want %q", got, want)
	}
}

func TestWrapImageAlreadyWrapped(t *testing.T) {
	wrapped := `<![CDATA[done <img src="https://example.com/x.png">]]>`
	if got := WrapImage(wrapped); got != wrapped {
		t.Errorf("WrapImage() changed an already wrapped description: %q", got)
	}
}

func TestWrapImages(t *testing.T) {
	items := []Item{
		{Description: "first"},
		{Description: `<![CDATA[second <img src="x">]]>`},
		{Description: "third"},
	}

	if changed := WrapImages(items); changed != 2 {
		t.Errorf("WrapImages() = %d, want 2", changed)
	}
	if items[0].Description != `<![CDATA[first <img src="IMG_SRC">]]>` {
		t.Errorf("items[0] = %q", items[0].Description)
	}
	if items[1].Description != `<![CDATA[second <img src="x">]]>` {
		t.Errorf("items[1] changed: %q", items[1].Description)
	}
}
