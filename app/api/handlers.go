package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lysyi3m/pocket-glue/app/colormode"
	"github.com/lysyi3m/pocket-glue/app/heading"
	"github.com/lysyi3m/pocket-glue/app/item"
	"github.com/lysyi3m/pocket-glue/app/locale"
	"github.com/lysyi3m/pocket-glue/app/settings"
	"github.com/lysyi3m/pocket-glue/app/tabs"
	"github.com/lysyi3m/pocket-glue/app/tags"
)

const defaultHeadingWidth = 60

// NewHandler creates the API handler set. languages is the configured
// preference list used when neither settings nor the request name one.
func NewHandler(feedParser FeedParserInterface, store *settings.Store,
	matcher colormode.MediaMatcher, tabHost tabs.Host, languages []string, version string) *Handler {
	return &Handler{
		feedParser: feedParser,
		settings:   store,
		matcher:    matcher,
		tabHost:    tabHost,
		languages:  languages,
		version:    version,
	}
}

// GetHealth reports service status and the resolved environment.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp":           time.Now().In(time.Local).Format(time.RFC3339),
		"version":             h.version,
		"settings_file":       h.settings.Path(),
		"authenticated":       h.settings.AccessToken() != "",
		"color_mode":          colormode.ModeClass(h.matcher),
		"language":            locale.LanguageCode(h.preferredLanguages("")),
		"supported_languages": locale.Codes(),
	})
}

// APIResolveItems resolves a feed item, or an array of them, into display items.
func (h *Handler) APIResolveItems(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		slog.Error("Failed to read request body", "operation", "resolve_items", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	items, err := item.DecodeItems(body)
	if err != nil {
		slog.Debug("Rejected feed item payload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid feed item payload",
			"details": err.Error(),
		})
		return
	}

	resolved := item.ResolveAll(items)
	c.JSON(http.StatusOK, gin.H{
		"items": resolved,
		"total": len(resolved),
	})
}

// APIResolveFeed parses an RSS/Atom document and resolves each entry.
func (h *Handler) APIResolveFeed(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		slog.Error("Failed to read request body", "operation", "resolve_feed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	items, err := h.feedParser.Run(body)
	if err != nil {
		slog.Debug("Rejected feed document", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid feed document",
			"details": err.Error(),
		})
		return
	}

	resolved := item.ResolveAll(items)
	c.JSON(http.StatusOK, gin.H{
		"items": resolved,
		"total": len(resolved),
	})
}

// APIGetEnvironment reports the language catalog and color mode class the UI
// should use. An explicit locale setting wins over Accept-Language, which
// wins over the configured languages.
func (h *Handler) APIGetEnvironment(c *gin.Context) {
	preferred := h.preferredLanguages(c.GetHeader("Accept-Language"))

	c.JSON(http.StatusOK, gin.H{
		"language":   locale.LanguageCode(preferred),
		"color_mode": colormode.ModeClass(h.matcher),
	})
}

func (h *Handler) preferredLanguages(acceptLanguage string) []string {
	var preferred []string
	if lang := h.settings.Locale(); lang != "" {
		preferred = append(preferred, lang)
	}
	preferred = append(preferred, locale.FromAcceptLanguage(acceptLanguage)...)
	return append(preferred, h.languages...)
}

// APIRenderHeading renders the heading bar for a save status.
func (h *Handler) APIRenderHeading(c *gin.Context) {
	status := heading.SaveStatus(c.DefaultQuery("status", string(heading.Idle)))

	width := defaultHeadingWidth
	if raw := c.Query("width"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid width parameter"})
			return
		}
		width = parsed
	}

	c.Header("X-Save-Status-Copy", status.Copy())
	c.String(http.StatusOK, heading.Render(status, colormode.ModeClass(h.matcher), width))
}

// APIListTabs lists every open tab on the tab host.
func (h *Handler) APIListTabs(c *gin.Context) {
	found, err := h.tabHost.Query(c.Request.Context(), "<all_urls>")
	if err != nil {
		slog.Error("Tab query failed", "operation", "list_tabs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Tab query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tabs":  found,
		"total": len(found),
	})
}

// APIOpenTab opens a tab. Only the in-memory host supports it.
func (h *Handler) APIOpenTab(c *gin.Context) {
	memoryHost, ok := h.tabHost.(*tabs.MemoryHost)
	if !ok {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Tab host does not support opening tabs"})
		return
	}

	var req openTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid tab payload",
			"details": err.Error(),
		})
		return
	}

	tab := memoryHost.Open(req.URL, req.Active)
	c.JSON(http.StatusCreated, gin.H{
		"tab":         tab,
		"system_page": tabs.IsSystemPage(tab),
	})
}

// APICheckSystemPage reports whether a URL is a browser-internal page.
func (h *Handler) APICheckSystemPage(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	active := true
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid active parameter"})
			return
		}
		active = parsed
	}

	tab := tabs.Tab{Active: active, URL: url}
	c.JSON(http.StatusOK, gin.H{
		"url":         url,
		"system_link": tabs.IsSystemLink(url),
		"system_page": tabs.IsSystemPage(tab),
	})
}

// APICloseLoginPage closes login success tabs and reports how many were closed.
func (h *Handler) APICloseLoginPage(c *gin.Context) {
	closed, err := tabs.CloseLoginPage(c.Request.Context(), h.tabHost)
	if err != nil {
		slog.Error("Failed to close login page", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to close login page",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"closed":  closed,
	})
}

// APICheckTag validates a tag and counts its duplicates in the given list.
func (h *Handler) APICheckTag(c *gin.Context) {
	var req checkTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid tag payload",
			"details": err.Error(),
		})
		return
	}

	response := gin.H{
		"value":      req.Value,
		"duplicates": tags.CheckDuplicate(req.Tags, req.Value),
		"valid":      true,
		"status":     heading.Idle,
	}

	if _, err := tags.Validate(req.Value); err != nil {
		response["valid"] = false
		response["error"] = err.Error()
		if errors.Is(err, tags.ErrTooLong) {
			response["status"] = heading.TagsError
		}
	}

	c.JSON(http.StatusOK, response)
}
