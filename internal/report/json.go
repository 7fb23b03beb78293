package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the structured export schema for tooling integration.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Stats     JSONStats   `json:"stats"`
	Kept      []string    `json:"kept"`
	Dropped   []string    `json:"dropped"`
}

// JSONStats contains scan and decision statistics.
type JSONStats struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesScanned    int `json:"files_scanned"`
	FilesSkipped    int `json:"files_skipped"`
	TokensExtracted int `json:"tokens_extracted"`
	Candidates      int `json:"candidates"`
	Safelisted      int `json:"safelisted"`
	Kept            int `json:"kept"`
	Dropped         int `json:"dropped"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	output := JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Stats: JSONStats{
			FilesDiscovered: rep.Stats.FilesDiscovered,
			FilesScanned:    rep.Stats.FilesScanned,
			FilesSkipped:    rep.Stats.FilesSkipped,
			TokensExtracted: rep.TokenCount,
			Candidates:      rep.Universe,
			Safelisted:      rep.Safelisted,
			Kept:            len(rep.Kept),
			Dropped:         len(rep.Dropped),
		},
		Kept:    rep.Kept,
		Dropped: rep.Dropped,
	}
	if output.Kept == nil {
		output.Kept = []string{}
	}
	if output.Dropped == nil {
		output.Dropped = []string{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
