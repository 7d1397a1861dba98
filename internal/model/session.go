package model

import "time"

// GenerationSession represents one run of the script+audio pipeline for a
// set of selected headlines. At most one session is in flight at a time.
type GenerationSession struct {
	ID         string
	Headlines  []HeadlineItem
	Step       GenerationStep
	Scripts    []string
	Audio      []byte // opaque audio payload, decoded by the playback layer
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// WireHeadlines reconstructs the wire-format lines for the selected
// headlines in selection order.
func (gs *GenerationSession) WireHeadlines() []string {
	lines := make([]string, 0, len(gs.Headlines))
	for i := range gs.Headlines {
		lines = append(lines, gs.Headlines[i].WireFormat())
	}
	return lines
}
