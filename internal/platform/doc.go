package platform

// Package platform contains OS and format glue: the curated headline feed
// parser and filesystem helpers for exporting episode audio.
