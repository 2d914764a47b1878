package model

import "time"

// StatusCheck is a legacy uptime ping recorded through POST /api/status.
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
