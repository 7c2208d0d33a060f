package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devevent/internal/domain"
)

func TestEmailService_SendBookingConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer)

	err := svc.SendBookingConfirmation(context.Background(), &domain.BookingConfirmationEmailData{Email: "jane@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "booking_confirmation", renderer.name)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, domain.MailMessage{To: "jane@example.com", Subject: "subject", HTML: "<p>html</p>", Text: "text"}, mailer.sent[0])
}

func TestEmailService_Errors(t *testing.T) {
	ctx := context.Background()

	err := NewEmailService(&fakeMailer{}, &fakeRenderer{}).SendBookingConfirmation(ctx, nil)
	require.Error(t, err)

	err = NewEmailService(&fakeMailer{}, &fakeRenderer{err: errors.New("bad template")}).
		SendBookingConfirmation(ctx, &domain.BookingConfirmationEmailData{Email: "jane@example.com"})
	require.ErrorContains(t, err, "bad template")

	err = NewEmailService(&fakeMailer{err: errors.New("smtp down")}, &fakeRenderer{}).
		SendBookingConfirmation(ctx, &domain.BookingConfirmationEmailData{Email: "jane@example.com"})
	require.ErrorContains(t, err, "smtp down")
}
