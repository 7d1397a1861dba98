package generate

// Package generate implements the two-phase podcast pipeline: request a
// script for the selected headlines, then request synthesized audio for the
// script, then hand the audio to the player. The phases are strictly
// sequential and at most one session runs at a time.
