package model

// Task is a single todo entry.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Priority  bool   `json:"priority"`
}

// RecordID implements record.Record.
func (t Task) RecordID() int64 { return t.ID }
