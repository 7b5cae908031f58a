package event

import "time"

const (
	// PushNotiQueue carries one event per stored notification record.
	PushNotiQueue = "push_noti_events"
	// PushNotiDLQ receives events that failed delivery.
	PushNotiDLQ = "push_noti_events_dlq"
)

// PushEventModel is the wire shape of a push delivery event. The stored
// notification record remains the source of truth; this event only drives
// best-effort FCM/email delivery.
type PushEventModel struct {
	EventID        string    `json:"event_id"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RelatedType    string    `json:"related_type"`
	RelatedID      string    `json:"related_id"`
	CreatedAt      time.Time `json:"created_at"`
}
