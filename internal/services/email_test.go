package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventapi/internal/domain"
)

type recordingMailer struct {
	to, subject, html, text string
	err                     error
}

func (m *recordingMailer) Send(_ context.Context, to, subject, html, text string) error {
	m.to, m.subject, m.html, m.text = to, subject, html, text
	return m.err
}

type stubRenderer struct {
	name string
	err  error
}

func (r *stubRenderer) Render(name string, _ any) (string, string, string, error) {
	r.name = name
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendEventInvitation(t *testing.T) {
	ctx := context.Background()
	mailer := &recordingMailer{}
	renderer := &stubRenderer{}
	svc := NewEmailService(mailer, renderer, testLogger)

	err := svc.SendEventInvitation(ctx, &domain.EventInvitationEmailData{Email: "bob@example.com", EventTitle: "Party"})
	require.NoError(t, err)
	assert.Equal(t, "event_invitation", renderer.name)
	assert.Equal(t, "bob@example.com", mailer.to)
	assert.Equal(t, "subject", mailer.subject)
	assert.Equal(t, "<p>html</p>", mailer.html)
	assert.Equal(t, "text", mailer.text)

	assert.Error(t, svc.SendEventInvitation(ctx, nil))

	mailer.err = errors.New("rejected")
	err = svc.SendEventInvitation(ctx, &domain.EventInvitationEmailData{Email: "bob@example.com"})
	assert.ErrorIs(t, err, mailer.err)

	renderer.err = errors.New("bad template")
	err = NewEmailService(mailer, renderer, testLogger).SendEventInvitation(ctx, &domain.EventInvitationEmailData{Email: "bob@example.com"})
	assert.ErrorIs(t, err, renderer.err)
}
