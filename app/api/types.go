package api

import (
	"github.com/lysyi3m/pocket-glue/app/colormode"
	"github.com/lysyi3m/pocket-glue/app/item"
	"github.com/lysyi3m/pocket-glue/app/settings"
	"github.com/lysyi3m/pocket-glue/app/tabs"
	"github.com/lysyi3m/pocket-glue/app/tags"
)

// FeedParserInterface turns a feed document into feed items.
type FeedParserInterface interface {
	Run(data []byte) ([]*item.FeedItem, error)
}

var _ FeedParserInterface = (*item.FeedParser)(nil)

type Handler struct {
	feedParser FeedParserInterface
	settings   *settings.Store
	matcher    colormode.MediaMatcher
	tabHost    tabs.Host
	languages  []string
	version    string
}

type openTabRequest struct {
	URL    string `json:"url" binding:"required"`
	Active bool   `json:"active"`
}

type checkTagRequest struct {
	Tags  []tags.Tag `json:"tags"`
	Value string     `json:"value"`
}
