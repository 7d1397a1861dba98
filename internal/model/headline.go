package model

import (
	"fmt"
	"strings"
)

// DefaultDate is used when a headline line carries no parenthesized date
const DefaultDate = "Recent"

// Display length limits
const (
	MaxDisplayTitleLength = 80
	TitleTruncateSuffix   = "..."
)

// HeadlineItem represents a single curated headline parsed from the backend
// feed. Items are immutable after parsing and discarded on the next fetch.
type HeadlineItem struct {
	ID        string
	Title     string
	Date      string // free-form date text, DefaultDate when the feed gives none
	SourceURL string
}

// WireFormat reconstructs the exact feed line for this headline. The script
// endpoint consumes the same format the feed parser reads, so the literal
// markers must match byte for byte.
func (h *HeadlineItem) WireFormat() string {
	return fmt.Sprintf("**%s** (%s)", h.Title, h.Date)
}

// GetDisplayTitle returns the title trimmed and truncated for list rows
func (h *HeadlineItem) GetDisplayTitle() string {
	title := strings.TrimSpace(h.Title)
	if title == "" {
		return h.ID
	}
	if len(title) > MaxDisplayTitleLength {
		return title[:MaxDisplayTitleLength] + TitleTruncateSuffix
	}
	return title
}
