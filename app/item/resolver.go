package item

import (
	"cmp"
	"regexp"
)

// domainPattern takes the host-like run after an optional scheme, credentials
// and www. prefix. Every group before the capture is optional, so any string
// that does not start with a delimiter yields something.
var domainPattern = regexp.MustCompile(`(?im)^(?:https?://)?(?:[^@\n]+@)?(?:www\.)?([^:/\n?=]+)`)

// Resolve derives the display metadata for item. A nil item resolves to an
// empty DisplayItem.
func Resolve(item *FeedItem) DisplayItem {
	if item == nil {
		return DisplayItem{}
	}

	return DisplayItem{
		ItemID:    item.ItemID,
		Title:     Title(item),
		Thumbnail: Thumbnail(item),
		Publisher: Publisher(item),
	}
}

// ResolveAll resolves every item, keeping positions.
func ResolveAll(items []*FeedItem) []DisplayItem {
	resolved := make([]DisplayItem, len(items))
	for i, item := range items {
		resolved[i] = Resolve(item)
	}
	return resolved
}

// Title returns the most appropriate title to show, falling back to the
// publisher when the item carries no title of its own.
func Title(item *FeedItem) string {
	if item == nil {
		return ""
	}

	return cmp.Or(
		item.Title,
		item.ResolvedTitle,
		item.GivenTitle,
		item.DisplayURL,
		Publisher(item),
	)
}

// Publisher returns the best text to display as the publisher of item.
func Publisher(item *FeedItem) string {
	if item == nil {
		return ""
	}

	return cmp.Or(
		item.DomainMetadata.name(),
		item.Domain,
		DomainForURL(cmp.Or(item.GivenURL, item.ResolvedURL)),
	)
}

// Thumbnail returns the most appropriate image to show as a thumbnail.
// Only the first entry of Images is considered.
func Thumbnail(item *FeedItem) string {
	if item == nil {
		return ""
	}

	return cmp.Or(
		item.TopImageURL,
		item.Image.source(),
		item.Images.firstSource(),
	)
}

// DomainForURL returns the base domain of url, or "" when url is empty or
// nothing can be captured from it.
func DomainForURL(url string) string {
	if url == "" {
		return ""
	}

	match := domainPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}
