package models

// Event is an audit record published to Kafka for account and file activity.
type Event struct {
	EventID   string `json:"event_id"`           // Unique event id
	Timestamp int64  `json:"timestamp"`          // Unix time the event occurred
	UserID    string `json:"user_id"`            // Acting user
	Action    string `json:"action"`             // e.g. "user_registered", "file_uploaded"
	Detail    string `json:"detail,omitempty"`   // Action-specific detail (e.g. category)
}
