// Package models contains the records moderated through teamadmin.
package models

import "time"

// Ad is an event submission awaiting or past moderation.
// Min <= Max is expected from submitters but never enforced here.
type Ad struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	Min         int          `json:"min"`
	Max         int          `json:"max"`
	Date        Date         `json:"date"`
	Time        string       `json:"time"`
	Verified    Verification `json:"verified"`
	Available   bool         `json:"available"`
	Info        string       `json:"info"`
}

func (a Ad) RecordID() int64 { return a.ID }
