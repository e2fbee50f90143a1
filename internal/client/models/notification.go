package models

import "time"

type NotificationType string

const (
	NotificationBooking NotificationType = "booking"
	NotificationMessage NotificationType = "message"
)

// Notification is one entry of the notification service's list.
type Notification struct {
	ID        string           `json:"id" validate:"required"`
	Type      NotificationType `json:"type" validate:"oneof=booking message"`
	Title     string           `json:"title" validate:"required"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp" validate:"required"`
	Read      bool             `json:"read"`
}

// NotificationAction is the body of PUT /api/notifications.
type NotificationAction struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

const (
	ActionMarkAsRead    = "markAsRead"
	ActionMarkAllAsRead = "markAllAsRead"
)
