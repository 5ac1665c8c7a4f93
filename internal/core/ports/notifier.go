package ports

import "context"

// StatusNotification describes a status-change email to a student.
type StatusNotification struct {
	GrievanceID uint
	StudentID   string
	Email       string
	Category    string
	Status      string
	Reply       string
}

// Notifier accepts notifications for background delivery. Callers never
// block on or observe the outcome; delivery failures are logged only.
type Notifier interface {
	Notify(n StatusNotification)
}

// MailMessage is a single outbound email.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer is the narrow interface over the mail-delivery collaborator.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
