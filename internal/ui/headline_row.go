package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/newscast/news-podcast/internal/model"
)

// HeadlineRow represents a selectable headline row widget
type HeadlineRow struct {
	widget.BaseWidget

	item  model.HeadlineItem
	index int

	// UI components
	check      *widget.Check
	titleLabel *widget.Label
	dateLabel  *widget.Label

	// Callbacks
	onToggle func(index int, selected bool)
}

// NewHeadlineRow creates a new headline row widget
func NewHeadlineRow() *HeadlineRow {
	hr := &HeadlineRow{index: -1}
	hr.ExtendBaseWidget(hr)

	hr.check = widget.NewCheck("", func(checked bool) {
		if hr.onToggle != nil && hr.index >= 0 {
			hr.onToggle(hr.index, checked)
		}
	})

	hr.titleLabel = widget.NewLabel("")
	hr.titleLabel.Wrapping = fyne.TextWrapWord
	hr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	hr.dateLabel = widget.NewLabel("")
	hr.dateLabel.TextStyle = fyne.TextStyle{Italic: true}

	return hr
}

// SetOnToggle sets the selection toggle callback
func (hr *HeadlineRow) SetOnToggle(onToggle func(index int, selected bool)) {
	hr.onToggle = onToggle
}

// Update binds the row to a headline and its current selection state
func (hr *HeadlineRow) Update(item model.HeadlineItem, index int, selected bool) {
	hr.item = item
	hr.index = index

	hr.titleLabel.SetText(item.GetDisplayTitle())
	hr.dateLabel.SetText(item.Date)

	// SetChecked fires the change callback; suppress it while rebinding
	hr.check.OnChanged = nil
	hr.check.SetChecked(selected)
	hr.check.OnChanged = func(checked bool) {
		if hr.onToggle != nil && hr.index >= 0 {
			hr.onToggle(hr.index, checked)
		}
	}

	hr.Refresh()
}

// Tapped toggles selection so the whole row is a touch target
func (hr *HeadlineRow) Tapped(_ *fyne.PointEvent) {
	hr.check.SetChecked(!hr.check.Checked)
}

// CreateRenderer creates the row renderer
func (hr *HeadlineRow) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(hr.titleLabel, hr.dateLabel)
	row := container.NewBorder(nil, nil, hr.check, nil, text)
	return widget.NewSimpleRenderer(row)
}

// MinSize keeps rows tall enough for touch targets
func (hr *HeadlineRow) MinSize() fyne.Size {
	min := hr.BaseWidget.MinSize()
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}
