package model

import (
	"encoding/json"
	"fmt"
)

// DefaultProjectDescription is what a freshly created project starts with.
const DefaultProjectDescription = "New project description. Click to edit."

// Status is the lifecycle state of a project.
type Status int

const (
	StatusActive Status = iota
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusCompleted:
		return "completed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Toggle flips between active and completed.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusCompleted
	}
	return StatusActive
}

// ParseStatus accepts the persisted spelling only.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "completed":
		return StatusCompleted, nil
	}
	return 0, fmt.Errorf("unknown project status %q", s)
}

func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case StatusActive, StatusCompleted:
		return json.Marshal(s.String())
	}
	return nil, fmt.Errorf("marshal status: invalid value %d", int(s))
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	v, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Project groups a title, a free-form description and attached file names.
// Files only ever grow.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Files       []string `json:"files"`
}

// RecordID implements record.Record.
func (p Project) RecordID() int64 { return p.ID }

// NewProject builds a project the way the add form does.
func NewProject(id int64, title string) Project {
	return Project{
		ID:          id,
		Title:       title,
		Description: DefaultProjectDescription,
		Status:      StatusActive,
		Files:       []string{},
	}
}
