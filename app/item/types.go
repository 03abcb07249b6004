package item

import (
	"encoding/json"
)

// FeedItem is an item as returned by a v3 feed endpoint. None of the fields
// are guaranteed; an empty string means the field was absent or unusable.
type FeedItem struct {
	ItemID         string
	Title          string
	ResolvedTitle  string
	GivenTitle     string
	DisplayURL     string
	DomainMetadata *DomainMetadata
	Domain         string
	GivenURL       string
	ResolvedURL    string
	TopImageURL    string
	Image          *Image
	Images         *Images
}

type DomainMetadata struct {
	Name string
}

type Image struct {
	Src string
}

// DisplayItem is the resolved, render-ready projection of a FeedItem.
type DisplayItem struct {
	ItemID    string
	Title     string
	Thumbnail string
	Publisher string
}

func (d DisplayItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ItemID    *string `json:"itemId"`
		Title     *string `json:"title"`
		Thumbnail *string `json:"thumbnail"`
		Publisher *string `json:"publisher"`
	}{
		ItemID:    nullable(d.ItemID),
		Title:     nullable(d.Title),
		Thumbnail: nullable(d.Thumbnail),
		Publisher: nullable(d.Publisher),
	})
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (m *DomainMetadata) name() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (i *Image) source() string {
	if i == nil {
		return ""
	}
	return i.Src
}
