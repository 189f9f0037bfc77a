// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/finantrack/backend/internal/application/adapter"
	"github.com/finantrack/backend/internal/domain/entity"
)

// digestSubject is the subject line of the notification digest email.
const digestSubject = "Resumo das suas notificações financeiras"

// severityLabels maps severities to their Portuguese display labels.
var severityLabels = map[entity.NotificationSeverity]string{
	entity.SeverityDanger:  "Urgente",
	entity.SeverityWarning: "Atenção",
	entity.SeverityInfo:    "Informativo",
	entity.SeveritySuccess: "Boa notícia",
}

var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>Olá, {{.Name}}!</h2>
  <p>Aqui está o resumo das suas notificações financeiras:</p>
  {{range .Items}}
  <div style="border-left: 4px solid {{.Color}}; padding: 8px 12px; margin-bottom: 12px;">
    <strong>[{{.Label}}] {{.Title}}</strong>
    <p style="margin: 4px 0 0 0;">{{.Message}}</p>
  </div>
  {{end}}
  <p style="color: #6b7280; font-size: 12px;">Você está recebendo este e-mail porque ativou o resumo de notificações no FinanTrack.</p>
</body>
</html>`))

// severityColors maps severities to the accent colors used in the HTML digest.
var severityColors = map[entity.NotificationSeverity]string{
	entity.SeverityDanger:  "#dc2626",
	entity.SeverityWarning: "#f59e0b",
	entity.SeverityInfo:    "#3b82f6",
	entity.SeveritySuccess: "#10b981",
}

type digestItem struct {
	Label   string
	Color   string
	Title   string
	Message string
}

type digestData struct {
	Name  string
	Items []digestItem
}

// DigestSender renders a user's ranked notifications into a digest email and
// delivers it through the configured sender.
type DigestSender struct {
	sender adapter.EmailSender
}

// NewDigestSender creates a new DigestSender instance.
func NewDigestSender(sender adapter.EmailSender) *DigestSender {
	return &DigestSender{
		sender: sender,
	}
}

// Send renders and sends the digest. Nothing is sent when the notification
// list is empty.
func (d *DigestSender) Send(ctx context.Context, user *entity.User, notifications []*entity.Notification) (*adapter.SendEmailResult, error) {
	if len(notifications) == 0 {
		return nil, nil
	}

	data := digestData{
		Name:  user.Name,
		Items: make([]digestItem, len(notifications)),
	}
	for i, n := range notifications {
		data.Items[i] = digestItem{
			Label:   severityLabel(n.Severity),
			Color:   severityColor(n.Severity),
			Title:   n.Title,
			Message: n.Message,
		}
	}

	var html strings.Builder
	if err := digestTemplate.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("failed to render digest: %w", err)
	}

	return d.sender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Name:    user.Name,
		Subject: digestSubject,
		HTML:    html.String(),
		Text:    renderText(data),
	})
}

// renderText builds the plain-text alternative of the digest.
func renderText(data digestData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s!\n\nResumo das suas notificações financeiras:\n\n", data.Name)
	for _, item := range data.Items {
		fmt.Fprintf(&b, "[%s] %s\n%s\n\n", item.Label, item.Title, item.Message)
	}
	return b.String()
}

func severityLabel(s entity.NotificationSeverity) string {
	if label, ok := severityLabels[s]; ok {
		return label
	}
	return "Informativo"
}

func severityColor(s entity.NotificationSeverity) string {
	if color, ok := severityColors[s]; ok {
		return color
	}
	return severityColors[entity.SeverityInfo]
}
