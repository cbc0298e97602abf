package model

// Notification is one entry of the append-only notification queue.
type Notification struct {
	ID        string    `json:"id,omitempty"`
	Message   string    `json:"message"`
	Timestamp Timestamp `json:"timestamp"`
}

// NotificationCollection is the persisted notifications document.
type NotificationCollection struct {
	Notifications []Notification `json:"notifications"`
}
