package backend

// Package backend implements the HTTP client for the podcast backend: it
// fetches curated headlines, requests a generated script for a selection,
// and requests synthesized audio for a script. Responses are JSON except
// for audio, which is returned as an opaque binary payload.
