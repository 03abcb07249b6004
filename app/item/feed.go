package item

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedParser turns an already downloaded RSS/Atom/JSON feed document into
// FeedItems so it can go through the same resolution as API records.
type FeedParser struct {
	gofeedParser *gofeed.Parser
}

// NewFeedParser creates a parser for RSS, Atom and JSON feeds.
func NewFeedParser() *FeedParser {
	return &FeedParser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses a feed document into feed items, one per entry.
func (p *FeedParser) Run(data []byte) ([]*FeedItem, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]*FeedItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		if entry == nil {
			continue
		}
		items = append(items, FromFeed(feed, entry))
	}

	return items, nil
}

// FromFeed maps a parsed feed entry onto the FeedItem shape. The channel
// title stands in for domain_metadata.name.
func FromFeed(feed *gofeed.Feed, entry *gofeed.Item) *FeedItem {
	fi := &FeedItem{
		ItemID:      cmp.Or(entry.GUID, entry.Link),
		Title:       strings.TrimSpace(entry.Title),
		GivenURL:    entry.Link,
		ResolvedURL: alternateLink(entry),
		TopImageURL: mediaThumbnail(entry),
	}

	if feed != nil && strings.TrimSpace(feed.Title) != "" {
		fi.DomainMetadata = &DomainMetadata{Name: strings.TrimSpace(feed.Title)}
	}

	if entry.Image != nil && entry.Image.URL != "" {
		fi.Image = &Image{Src: entry.Image.URL}
	}

	for i, enclosure := range entry.Enclosures {
		if enclosure == nil || enclosure.URL == "" || !strings.HasPrefix(enclosure.Type, "image/") {
			continue
		}
		if fi.Images == nil {
			fi.Images = NewImages()
		}
		fi.Images.Set(strconv.Itoa(i), Image{Src: enclosure.URL})
	}

	return fi
}

func alternateLink(entry *gofeed.Item) string {
	for _, link := range entry.Links {
		if link != "" && link != entry.Link {
			return link
		}
	}
	return ""
}

// mediaThumbnail reads <media:thumbnail url="..."> or <media:content
// medium="image" url="...">.
func mediaThumbnail(entry *gofeed.Item) string {
	media, ok := entry.Extensions["media"]
	if !ok {
		return ""
	}

	for _, ext := range media["thumbnail"] {
		if url := ext.Attrs["url"]; url != "" {
			return url
		}
	}

	for _, ext := range media["content"] {
		if ext.Attrs["medium"] == "image" && ext.Attrs["url"] != "" {
			return ext.Attrs["url"]
		}
	}

	return ""
}
