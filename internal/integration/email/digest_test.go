// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/finantrack/backend/internal/domain/entity"
)

func digestUser() *entity.User {
	return entity.NewUser("maria@example.com", "Maria", "hashed")
}

func digestNotifications() []*entity.Notification {
	createdAt := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	return []*entity.Notification{
		{
			ID:        "expense-over-abc-6-2025",
			Severity:  entity.SeverityDanger,
			Title:     "Gastos acima da meta",
			Message:   "Você já gastou R$ 2000.00 este mês.",
			CreatedAt: createdAt,
		},
		{
			ID:        "tip-set-goal-abc",
			Severity:  entity.SeverityInfo,
			Title:     "Defina suas metas",
			Message:   "Você ainda não definiu uma meta financeira para este mês.",
			CreatedAt: createdAt,
		},
	}
}

func TestDigestSender(t *testing.T) {
	ctx := context.Background()

	t.Run("renders notifications into HTML and text bodies", func(t *testing.T) {
		mock := NewMockEmailSender()
		sender := NewDigestSender(mock)

		result, err := sender.Send(ctx, digestUser(), digestNotifications())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result == nil {
			t.Fatal("expected a send result")
		}

		if len(mock.SentEmails) != 1 {
			t.Fatalf("expected 1 email, got %d", len(mock.SentEmails))
		}
		sent := mock.SentEmails[0]

		if sent.To != "maria@example.com" {
			t.Errorf("expected recipient maria@example.com, got %s", sent.To)
		}
		if sent.Subject != digestSubject {
			t.Errorf("expected digest subject, got %q", sent.Subject)
		}
		if !strings.Contains(sent.HTML, "Olá, Maria!") {
			t.Error("expected greeting in HTML body")
		}
		if !strings.Contains(sent.HTML, "Gastos acima da meta") {
			t.Error("expected notification title in HTML body")
		}
		if !strings.Contains(sent.HTML, "[Urgente]") {
			t.Error("expected severity label in HTML body")
		}
		if !strings.Contains(sent.Text, "[Urgente] Gastos acima da meta") {
			t.Error("expected severity label and title in text body")
		}
		if !strings.Contains(sent.Text, "[Informativo] Defina suas metas") {
			t.Error("expected info label in text body")
		}
	})

	t.Run("empty notification list sends nothing", func(t *testing.T) {
		mock := NewMockEmailSender()
		sender := NewDigestSender(mock)

		result, err := sender.Send(ctx, digestUser(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != nil {
			t.Errorf("expected nil result, got %+v", result)
		}
		if len(mock.SentEmails) != 0 {
			t.Errorf("expected no emails, got %d", len(mock.SentEmails))
		}
	})

	t.Run("sender failure propagates", func(t *testing.T) {
		mock := NewMockEmailSender()
		mock.ShouldFail = true
		sender := NewDigestSender(mock)

		if _, err := sender.Send(ctx, digestUser(), digestNotifications()); err == nil {
			t.Fatal("expected error from failing sender")
		}
	})
}
