package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI helpers
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateActionButton creates a full-width action button sized for touch
func (m *MobileUI) CreateActionButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.HighImportance

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(btn.Size().Width, MobileButtonHeight))
	}

	return btn
}

// GetSpacing returns appropriate spacing for the current device
func (m *MobileUI) GetSpacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8 // Standard spacing for desktop
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CreatePlayerLayout lays out the player controls for the current
// orientation: stacked in portrait, side by side in landscape.
func (m *MobileUI) CreatePlayerLayout(artwork, controls fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && m.IsLandscape() {
		return container.NewAdaptiveGrid(2, artwork, controls)
	}
	return container.NewVBox(artwork, controls)
}
