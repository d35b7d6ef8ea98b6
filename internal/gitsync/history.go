package gitsync

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// HistoryFile records one line of JSON per sync run.
const HistoryFile = ".git-sync-history.jsonl"

// HistoryEntry describes a single sync run.
type HistoryEntry struct {
	ID           string `json:"id"`
	Timestamp    string `json:"ts"` // RFC3339 with microseconds.
	Remote       string `json:"remote"`
	Branch       string `json:"branch"`
	Message      string `json:"message"`
	Pushed       bool   `json:"pushed"`
	FilesAdded   int    `json:"files_added,omitempty"`
	SnapshotSize string `json:"snapshot_size,omitempty"`
}

// recordHistory appends an entry to the history log. Failures are
// swallowed; a sync should not fail because its record could not be
// written.
func recordHistory(entry HistoryEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	f, err := os.OpenFile(HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// ReadHistory returns the recorded sync runs, oldest first. A missing
// history file yields an empty slice.
func ReadHistory() ([]HistoryEntry, error) {
	data, err := os.ReadFile(HistoryFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []HistoryEntry
	decoder := json.NewDecoder(bytes.NewReader(data))
	for decoder.More() {
		var entry HistoryEntry
		if err := decoder.Decode(&entry); err != nil {
			// Skip trailing garbage rather than failing the whole read.
			break
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
