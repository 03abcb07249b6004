package item

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// UnmarshalJSON accepts any object shape. Fields with an unexpected type are
// treated as absent instead of failing the whole item.
func (f *FeedItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("feed item must be a JSON object: %w", err)
	}

	*f = FeedItem{
		ItemID:        text(fields["item_id"]),
		Title:         text(fields["title"]),
		ResolvedTitle: text(fields["resolved_title"]),
		GivenTitle:    text(fields["given_title"]),
		DisplayURL:    text(fields["display_url"]),
		Domain:        text(fields["domain"]),
		GivenURL:      text(fields["given_url"]),
		ResolvedURL:   text(fields["resolved_url"]),
		TopImageURL:   text(fields["top_image_url"]),
	}

	if meta, ok := object(fields["domain_metadata"]); ok {
		f.DomainMetadata = &DomainMetadata{Name: text(meta["name"])}
	}

	if raw, ok := fields["image"]; ok && isObject(raw) {
		image := decodeImage(raw)
		f.Image = &image
	}

	if raw, ok := fields["images"]; ok && (isObject(raw) || isArray(raw)) {
		images := &Images{}
		if err := images.UnmarshalJSON(raw); err == nil {
			f.Images = images
		}
	}

	return nil
}

func (f *FeedItem) MarshalJSON() ([]byte, error) {
	type wire struct {
		ItemID         string            `json:"item_id,omitempty"`
		Title          string            `json:"title,omitempty"`
		ResolvedTitle  string            `json:"resolved_title,omitempty"`
		GivenTitle     string            `json:"given_title,omitempty"`
		DisplayURL     string            `json:"display_url,omitempty"`
		DomainMetadata map[string]string `json:"domain_metadata,omitempty"`
		Domain         string            `json:"domain,omitempty"`
		GivenURL       string            `json:"given_url,omitempty"`
		ResolvedURL    string            `json:"resolved_url,omitempty"`
		TopImageURL    string            `json:"top_image_url,omitempty"`
		Image          map[string]string `json:"image,omitempty"`
		Images         *Images           `json:"images,omitempty"`
	}

	w := wire{
		ItemID:        f.ItemID,
		Title:         f.Title,
		ResolvedTitle: f.ResolvedTitle,
		GivenTitle:    f.GivenTitle,
		DisplayURL:    f.DisplayURL,
		Domain:        f.Domain,
		GivenURL:      f.GivenURL,
		ResolvedURL:   f.ResolvedURL,
		TopImageURL:   f.TopImageURL,
		Images:        f.Images,
	}
	if f.DomainMetadata != nil {
		w.DomainMetadata = map[string]string{"name": f.DomainMetadata.Name}
	}
	if f.Image != nil {
		w.Image = map[string]string{"src": f.Image.Src}
	}

	return json.Marshal(w)
}

// DecodeItems decodes either a single feed item or an array of them. Only
// malformed JSON is an error: null or non-object entries yield a nil item.
func DecodeItems(data []byte) ([]*FeedItem, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("failed to decode feed items: invalid JSON")
	}

	if trimmed[0] != '[' {
		return []*FeedItem{decodeItem(trimmed)}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode feed items: %w", err)
	}

	items := make([]*FeedItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, decodeItem(entry))
	}
	return items, nil
}

func decodeItem(raw json.RawMessage) *FeedItem {
	if !isObject(raw) {
		return nil
	}
	var f FeedItem
	if err := f.UnmarshalJSON(raw); err != nil {
		return nil
	}
	return &f
}

func decodeImage(raw json.RawMessage) Image {
	fields, ok := object(raw)
	if !ok {
		return Image{}
	}
	return Image{Src: text(fields["src"])}
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if !isObject(raw) {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// text returns the usable string form of a scalar. Strings pass through,
// non-zero numbers keep their literal form, everything else is absent.
func text(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return ""
		}
		return s
	case c == '-' || (c >= '0' && c <= '9'):
		n, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil || n == 0 {
			return ""
		}
		return string(trimmed)
	default:
		return ""
	}
}
