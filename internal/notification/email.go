package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/wb-go/wbf/logger"
)

type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailNotifier sends applicants their booking code and review result.
type EmailNotifier struct {
	client SESService
	sender string
	logger logger.Logger
}

func NewEmailNotifier(ctx context.Context, region, sender string, logger logger.Logger) (*EmailNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewEmailNotifierWithClient(ses.NewFromConfig(awsCfg), sender, logger), nil
}

func NewEmailNotifierWithClient(client SESService, sender string, logger logger.Logger) *EmailNotifier {
	return &EmailNotifier{client: client, sender: sender, logger: logger}
}

func (n *EmailNotifier) NotifyBookingReceived(ctx context.Context, b *domain.Booking, r *domain.Round) {
	subject := fmt.Sprintf("Exam booking %s received", b.Code)
	body := fmt.Sprintf(
		"Dear %s,\n\nYour booking code is %s.\nExam: %s, %s session.\nFee: %d THB (%s).\nStatus: %s.\n\n"+
			"Keep the booking code to check the review result.",
		b.FullName, b.Code,
		r.ExamDate.Format(time.DateOnly), r.TimeSlot,
		b.Price, b.PaymentMethod, b.Status,
	)
	n.send(ctx, b.Email, subject, body)
}

func (n *EmailNotifier) NotifyBookingVerified(ctx context.Context, b *domain.Booking) {
	subject := fmt.Sprintf("Exam booking %s confirmed", b.Code)
	body := fmt.Sprintf("Dear %s,\n\nYour payment for booking %s has been verified. See you at the exam.",
		b.FullName, b.Code,
	)
	n.send(ctx, b.Email, subject, body)
}

func (n *EmailNotifier) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	subject := fmt.Sprintf("Exam booking %s rejected", b.Code)
	body := fmt.Sprintf(
		"Dear %s,\n\nWe could not verify the payment for booking %s. Your seat has been released; please submit a new booking.",
		b.FullName, b.Code,
	)
	n.send(ctx, b.Email, subject, body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("to", to))
		return
	}

	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.sender),
	})
	if err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("error", err.Error()),
		)
	}
}
