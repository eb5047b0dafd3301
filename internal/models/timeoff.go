package models

import "time"

type TimeOff struct {
	ID string `json:"id"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	UserID string `json:"user_id"`
	User   *Staff `json:"user,omitempty"`

	Reason string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
