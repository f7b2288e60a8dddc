package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/pkg/errors"
	"github.com/taxdesk/tax-service/internal/interfaces"
)

type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// SQSQueue reads messages from one queue.
type SQSQueue struct {
	api      sqsAPI
	queueURL string
}

var _ interfaces.MessageQueue = (*SQSQueue)(nil)

// NewSQSQueue creates a consumer for queueURL.
func NewSQSQueue(cfg aws.Config, queueURL string) *SQSQueue {
	return &SQSQueue{api: sqs.NewFromConfig(cfg), queueURL: queueURL}
}

// Receive long-polls for up to maxMessages messages.
func (q *SQSQueue) Receive(ctx context.Context, maxMessages, waitSeconds int32) ([]interfaces.QueueMessage, error) {
	out, err := q.api.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitSeconds,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to receive messages")
	}

	messages := make([]interfaces.QueueMessage, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, interfaces.QueueMessage{
			ID:            aws.ToString(m.MessageId),
			Body:          aws.ToString(m.Body),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
		})
	}
	return messages, nil
}

// Delete acknowledges a received message.
func (q *SQSQueue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.api.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.queueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete message")
	}
	return nil
}
