package ui

// Package ui contains the Fyne-based user interface for the application.
// It wires user interactions to the backend client, the generation service,
// and the playback controller, and renders one of the loading, error,
// headline-list, generating, or player screens. All UI strings are
// localized via Localization.
