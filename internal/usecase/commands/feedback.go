package commands

import (
	"context"
	"strings"

	"storefront-backend/internal/domain/user"
	"storefront-backend/internal/pkg/errs"
	"storefront-backend/internal/usecase/shared"
)

var (
	ErrFeedbackIncomplete = errs.Sentinel("All fields are required. Please fill in all the information.", errs.ErrValidation)
	ErrFeedbackEmail      = errs.Sentinel("Please enter a valid email address.", errs.ErrValidation)
	ErrFeedbackNotSent    = errs.New("Failed to send feedback. Please try again later or contact us directly.")
)

type FeedbackCommands interface {
	// Submit delivers feedback to the operator. Unlike order mail, a delivery
	// failure is the caller's failure.
	Submit(ctx context.Context, f shared.Feedback) error
}

type feedbackCommandsImpl struct {
	notifier shared.Notifier
}

func NewFeedbackCommands(notifier shared.Notifier) FeedbackCommands {
	return &feedbackCommandsImpl{notifier: notifier}
}

func (uc *feedbackCommandsImpl) Submit(ctx context.Context, f shared.Feedback) error {
	f = shared.Feedback{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
	if f.Name == "" || f.Email == "" || f.Phone == "" || f.Message == "" {
		return ErrFeedbackIncomplete
	}
	if _, err := user.NewEmail(f.Email); err != nil {
		return ErrFeedbackEmail
	}

	if err := uc.notifier.NotifyFeedback(ctx, f); err != nil {
		return errs.Mark(errs.Wrap(err, "feedback delivery"), ErrFeedbackNotSent)
	}
	return nil
}
