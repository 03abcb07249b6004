package item

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDecodeItemFullShape(t *testing.T) {
	data := `{
		"item_id": "2911",
		"title": "A title",
		"resolved_title": "Resolved",
		"given_title": "Given",
		"display_url": "example.com/a",
		"domain_metadata": {"name": "Example", "logo": "logo.png"},
		"domain": "example.com",
		"given_url": "https://example.com/a",
		"resolved_url": "https://www.example.com/a",
		"top_image_url": "https://example.com/top.png",
		"image": {"src": "https://example.com/image.png"},
		"images": {"1": {"src": "https://example.com/1.png", "width": 100}}
	}`

	items, err := DecodeItems([]byte(data))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 1 || items[0] == nil {
		t.Fatalf("Expected one item, got %v", items)
	}

	fi := items[0]
	if fi.ItemID != "2911" {
		t.Errorf("Expected item id '2911', got %q", fi.ItemID)
	}
	if fi.DomainMetadata == nil || fi.DomainMetadata.Name != "Example" {
		t.Errorf("Expected domain metadata name 'Example', got %+v", fi.DomainMetadata)
	}
	if fi.Image == nil || fi.Image.Src != "https://example.com/image.png" {
		t.Errorf("Expected image src, got %+v", fi.Image)
	}
	if fi.Images.Len() != 1 {
		t.Errorf("Expected 1 image, got %d", fi.Images.Len())
	}

	got := Resolve(fi)
	want := DisplayItem{
		ItemID:    "2911",
		Title:     "A title",
		Thumbnail: "https://example.com/top.png",
		Publisher: "Example",
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestDecodeItemToleratesWrongTypes(t *testing.T) {
	data := `{
		"item_id": 2911,
		"title": null,
		"resolved_title": ["nope"],
		"given_title": false,
		"domain_metadata": "Example",
		"domain": 0,
		"given_url": {"href": "https://example.com"},
		"resolved_url": "https://resolved.example.com/x",
		"image": "a.png",
		"images": ["b.png"]
	}`

	items, err := DecodeItems([]byte(data))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	fi := items[0]
	if fi.ItemID != "2911" {
		t.Errorf("Expected numeric item id to be kept as '2911', got %q", fi.ItemID)
	}
	if fi.DomainMetadata != nil {
		t.Errorf("Expected non-object domain metadata to be dropped, got %+v", fi.DomainMetadata)
	}
	if fi.Image != nil {
		t.Errorf("Expected non-object image to be dropped, got %+v", fi.Image)
	}
	if fi.Images.Len() != 1 {
		t.Errorf("Expected images array to be keyed by index, got %d entries", fi.Images.Len())
	}

	got := Resolve(fi)
	if got.Title != "resolved.example.com" {
		t.Errorf("Expected title 'resolved.example.com', got %q", got.Title)
	}
	if got.Thumbnail != "" {
		t.Errorf("Expected no thumbnail, got %q", got.Thumbnail)
	}
}

func TestDecodeItemsArray(t *testing.T) {
	data := `[{"title": "One"}, null, "junk", 7, {"domain": "two.example.com"}]`

	items, err := DecodeItems([]byte(data))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("Expected 5 items, got %d", len(items))
	}
	for _, i := range []int{1, 2, 3} {
		if items[i] != nil {
			t.Errorf("Expected item %d to be nil, got %+v", i, items[i])
		}
	}

	resolved := ResolveAll(items)
	if resolved[0].Title != "One" {
		t.Errorf("Expected first title 'One', got %q", resolved[0].Title)
	}
	if resolved[4].Publisher != "two.example.com" {
		t.Errorf("Expected last publisher 'two.example.com', got %q", resolved[4].Publisher)
	}
}

func TestDecodeItemsNull(t *testing.T) {
	items, err := DecodeItems([]byte("null"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 1 || items[0] != nil {
		t.Errorf("Expected a single nil item, got %v", items)
	}
}

func TestDecodeItemsInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "{", `[{"title": "x"}`} {
		if _, err := DecodeItems([]byte(input)); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
}

func TestDecodeThumbnailFromImagesMap(t *testing.T) {
	items, err := DecodeItems([]byte(`{"images": {"onlyKey": {"src": "c.png"}}}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := Thumbnail(items[0]); got != "c.png" {
		t.Errorf("Expected thumbnail 'c.png', got %q", got)
	}
}

func TestDecodeImagesKeepsDocumentOrder(t *testing.T) {
	items, err := DecodeItems([]byte(`{"images": {"zeta": {"src": "z.png"}, "alpha": {"src": "a.png"}}}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := Thumbnail(items[0]); got != "z.png" {
		t.Errorf("Expected first key in document order to win, got %q", got)
	}
}

func TestFeedItemRoundTripKeepsImageOrder(t *testing.T) {
	images := NewImages()
	images.Set("b", Image{Src: "b.png"})
	images.Set("a", Image{Src: "a.png"})
	fi := &FeedItem{ItemID: "1", Image: &Image{Src: "i.png"}, Images: images}

	data, err := json.Marshal(fi)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(string(data), `"images":{"b":{"src":"b.png"},"a":{"src":"a.png"}}`) {
		t.Errorf("Expected images in insertion order, got %s", string(data))
	}

	items, err := DecodeItems(data)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := items[0].Images.Keys(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Errorf("Expected keys [b a], got %v", got)
	}
}

func TestDecodeImagesArray(t *testing.T) {
	items, err := DecodeItems([]byte(`{"images": [{"src": "arr.png"}, {"src": "second.png"}]}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	fi := items[0]
	if got := fi.Images.Keys(); len(got) != 2 || got[0] != "0" || got[1] != "1" {
		t.Errorf("Expected keys [0 1], got %v", got)
	}
	if got := Resolve(fi).Thumbnail; got != "arr.png" {
		t.Errorf("Expected thumbnail 'arr.png', got %q", got)
	}
}

func TestDecodeImagesEmptyArray(t *testing.T) {
	items, err := DecodeItems([]byte(`{"images": [], "domain": "example.com"}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := Thumbnail(items[0]); got != "" {
		t.Errorf("Expected no thumbnail, got %q", got)
	}
}
