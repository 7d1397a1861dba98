package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconRefresh  = "↻"
	IconBack     = "←"
	IconSave     = "💾"
	IconError    = "❌"
	IconPodcast  = "🎙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	TimeLabelFormat    = "%02d:%02d"
)

// Layout sizing (headline rows / player)
const (
	RowMinWidth  float32 = 320
	RowMinHeight float32 = 56

	DateLabelWidth float32 = 96

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48

	PlayerButtonSize float32 = 64
	SeekSliderStep           = 1.0 // seconds per slider unit
)

// Delays
const (
	// AutoStartDelay lets the player screen settle before autoplay
	AutoStartDelay = 500 * time.Millisecond
)

// Popup behavior
const (
	PopupAutoHide = 3 * time.Second
)
