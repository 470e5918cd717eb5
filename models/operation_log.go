package models

import "time"

// Operation log actions
const (
	ActionAdd      = "ADD"
	ActionUpdate   = "UPDATE"
	ActionDelete   = "DELETE"
	ActionGenerate = "GENERATE"
)

// OperationLog records one mutating action performed by a user
type OperationLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
