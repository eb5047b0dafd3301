package models

import "strings"

type Staff struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s *Staff) FullName() string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(s.FirstName) + " " + strings.TrimSpace(s.LastName))
}

type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Duration in minutes, informational only on this side.
	DurationMin int `json:"duration_min,omitempty"`
}
