package notification

import (
	"context"
	"fmt"

	"github.com/4nxiouz/thaitep-exam-booking/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/wb-go/wbf/logger"
)

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMSNotifier texts the applicant the booking code and the review result.
type SMSNotifier struct {
	client SNSService
	logger logger.Logger
}

func NewSMSNotifier(ctx context.Context, region string, logger logger.Logger) (*SMSNotifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewSMSNotifierWithClient(sns.NewFromConfig(awsCfg), logger), nil
}

func NewSMSNotifierWithClient(client SNSService, logger logger.Logger) *SMSNotifier {
	return &SMSNotifier{client: client, logger: logger}
}

func (n *SMSNotifier) NotifyBookingReceived(ctx context.Context, b *domain.Booking, _ *domain.Round) {
	n.send(ctx, b.Phone, fmt.Sprintf("Exam booking %s received, status: %s.", b.Code, b.Status))
}

func (n *SMSNotifier) NotifyBookingVerified(ctx context.Context, b *domain.Booking) {
	n.send(ctx, b.Phone, fmt.Sprintf("Exam booking %s confirmed.", b.Code))
}

func (n *SMSNotifier) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	n.send(ctx, b.Phone, fmt.Sprintf("Exam booking %s rejected, seat released.", b.Code))
}

func (n *SMSNotifier) send(ctx context.Context, phone, message string) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("sms skipped (context cancelled)", logger.String("phone", phone))
		return
	}

	_, err := n.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
	})
	if err != nil {
		n.logger.Error("failed to send sms notification",
			logger.String("phone", phone),
			logger.String("error", err.Error()),
		)
	}
}
