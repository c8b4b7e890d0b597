package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeDebt    NotificationType = "debt"
	NotificationTypeBudget  NotificationType = "budget"
	NotificationTypeGeneral NotificationType = "general"
)

type Notification struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	UserID      uuid.UUID        `json:"user_id" db:"user_id"`
	Title       string           `json:"title" db:"title"`
	Message     string           `json:"message" db:"message"`
	Type        NotificationType `json:"type" db:"type"`
	RelatedID   *uuid.UUID       `json:"related_id" db:"related_id"`
	IsRead      bool             `json:"is_read" db:"is_read"`
	IsDismissed bool             `json:"is_dismissed" db:"is_dismissed"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}
