package platform

import (
	"strings"

	"github.com/google/uuid"

	"github.com/newscast/news-podcast/internal/model"
)

// Feed format markers
const (
	BoldMarker = "**"

	// TitleDateSeparator is the marker-then-space-then-open-paren sequence
	// between the bold title and the parenthesized date
	TitleDateSeparator = "** ("
)

// HeadlineParserService parses curated feed lines into headline items
type HeadlineParserService struct{}

// NewHeadlineParserService creates a new headline parser service
func NewHeadlineParserService() *HeadlineParserService {
	return &HeadlineParserService{}
}

// ParseLines parses the raw feed lines in order, assigning a fresh ID to
// each item. Blank lines are skipped.
func (p *HeadlineParserService) ParseLines(lines []string) []model.HeadlineItem {
	items := make([]model.HeadlineItem, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, p.ParseLine(line))
	}
	return items
}

// ParseLine parses one feed line. Two shapes are recognized:
//
//	**<title>** (<date>)   bold-marked title with a parenthesized date
//	anything else          the whole line is the title, date defaults
//
// Title and date extraction are deliberately independent scans: the date is
// whatever sits between the LAST open paren and the LAST close paren, so a
// title containing its own parentheses does not shift the date.
func (p *HeadlineParserService) ParseLine(line string) model.HeadlineItem {
	return model.HeadlineItem{
		ID:    uuid.NewString(),
		Title: p.extractTitle(line),
		Date:  p.extractDate(line),
	}
}

// extractTitle returns the bold-marked title, or the whole line when the
// line does not match the marked shape
func (p *HeadlineParserService) extractTitle(line string) string {
	if !strings.HasPrefix(line, BoldMarker) {
		return line
	}

	idx := strings.Index(line, TitleDateSeparator)
	if idx == -1 {
		// marked but no date group; the whole line stays the title
		return line
	}

	return strings.TrimPrefix(line[:idx], BoldMarker)
}

// extractDate returns the substring between the last open paren and the
// last close paren, or the default date when the line has no usable pair
func (p *HeadlineParserService) extractDate(line string) string {
	open := strings.LastIndex(line, "(")
	closing := strings.LastIndex(line, ")")

	if open == -1 || closing == -1 || closing < open {
		return model.DefaultDate
	}

	date := line[open+1 : closing]
	if date == "" {
		return model.DefaultDate
	}
	return date
}
