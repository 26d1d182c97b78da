package domain

import "time"

// StatusCheck is a demo entity kept in process memory only. It has no
// relation to the notification path.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

type StatusCheckCreate struct {
	ClientName string `json:"client_name" form:"client_name" binding:"required"`
}

// StatusStore is an append-only, insertion-ordered in-memory log.
type StatusStore interface {
	Append(clientName string) StatusCheck
	List() []StatusCheck
}
