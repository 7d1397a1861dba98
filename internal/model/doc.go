package model

// Package model defines domain data structures used across the app: parsed
// headlines, podcast generation sessions, and step enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
