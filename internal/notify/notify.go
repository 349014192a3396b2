package notify

import (
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Urgency levels for notifications
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Body    string
	Urgency Urgency
	Timeout time.Duration
	Icon    string // Optional icon name
}

// Notifier handles sending desktop notifications
type Notifier struct {
	enabled bool
}

// NewNotifier creates a new notifier
func NewNotifier() *Notifier {
	return &Notifier{
		enabled: true,
	}
}

// SetEnabled enables or disables notifications
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// IsEnabled returns whether notifications are enabled
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}

// Send sends a desktop notification using notify-send
func (n *Notifier) Send(notification Notification) error {
	if !n.enabled {
		return nil
	}

	args := []string{}

	switch notification.Urgency {
	case UrgencyLow:
		args = append(args, "-u", "low")
	case UrgencyCritical:
		args = append(args, "-u", "critical")
	default:
		args = append(args, "-u", "normal")
	}

	if notification.Timeout > 0 {
		args = append(args, "-t", strconv.Itoa(int(notification.Timeout.Milliseconds())))
	}

	if notification.Icon != "" {
		args = append(args, "-i", notification.Icon)
	}

	args = append(args, "-a", "projeta")

	args = append(args, notification.Title)
	if notification.Body != "" {
		args = append(args, notification.Body)
	}

	cmd := exec.Command("notify-send", args...)
	return cmd.Run()
}

// SendDocumentReady announces a freshly generated project document.
// Failures are for the caller to log; document generation itself never
// depends on the notification going through.
func (n *Notifier) SendDocumentReady(projectName, path string, pages int) error {
	pageWord := "páginas"
	if pages == 1 {
		pageWord = "página"
	}
	return n.Send(Notification{
		Title:   "Documento gerado",
		Body:    fmt.Sprintf("%s (%d %s)\n%s", projectName, pages, pageWord, path),
		Urgency: UrgencyNormal,
		Timeout: 8 * time.Second,
		Icon:    "document-save-symbolic",
	})
}

// SendRenderFailed announces a failed document generation
func (n *Notifier) SendRenderFailed(projectName string) error {
	return n.Send(Notification{
		Title:   "Falha ao gerar documento",
		Body:    projectName,
		Urgency: UrgencyCritical,
		Timeout: 10 * time.Second,
		Icon:    "dialog-error-symbolic",
	})
}
