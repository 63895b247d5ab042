package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partyinvite/internal/domain"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	d := data.(*domain.RSVPNotificationEmailData)
	return "RSVP " + d.GuestName, "<p>" + d.GuestName + "</p>", d.GuestName, nil
}

func TestEmailService_SendRSVPNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and sends to host", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewEmailService(mailer, renderer, discardLogger())

		err := svc.SendRSVPNotification(ctx, &domain.RSVPNotificationEmailData{HostEmail: "host@example.com", GuestName: "Alice", Attending: true})
		require.NoError(t, err)
		assert.Equal(t, "rsvp_notification", renderer.name)
		assert.Equal(t, "host@example.com", mailer.to)
		assert.Equal(t, "RSVP Alice", mailer.subject)
		assert.Equal(t, "<p>Alice</p>", mailer.html)
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{}, discardLogger())
		require.Error(t, svc.SendRSVPNotification(ctx, nil))
	})

	t.Run("render failure", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{err: errors.New("bad template")}, discardLogger())
		err := svc.SendRSVPNotification(ctx, &domain.RSVPNotificationEmailData{HostEmail: "h@example.com"})
		require.Error(t, err)
		assert.Empty(t, mailer.to)
	})

	t.Run("send failure", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{err: errors.New("throttled")}, &fakeRenderer{}, discardLogger())
		err := svc.SendRSVPNotification(ctx, &domain.RSVPNotificationEmailData{HostEmail: "h@example.com", GuestName: "Bob"})
		require.ErrorContains(t, err, "throttled")
	})
}
