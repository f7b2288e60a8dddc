// Package cleanup consumes user-deleted events and removes the user's tax
// data, either as an SQS-triggered Lambda or by long-polling the queue.
package cleanup

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/davecgh/go-spew/spew"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/services"
	"go.uber.org/zap"
)

// Outcome is what happened to a single message.
type Outcome int

const (
	// Processed messages had their user's data removed.
	Processed Outcome = iota
	// Dropped messages could not be parsed and are never retried.
	Dropped
	// Failed messages hit a transient error and should be redelivered.
	Failed
)

type Processor struct {
	service    interfaces.AccountCleanupService
	logger     *zap.Logger
	dumpEvents bool
}

func NewProcessor(service interfaces.AccountCleanupService) *Processor {
	return &Processor{service: service, logger: logger.Named("user_cleanup")}
}

// WithEventDump makes HandleSQSEvent log every incoming batch in full at debug level.
func (p *Processor) WithEventDump(enabled bool) *Processor {
	p.dumpEvents = enabled
	return p
}

// Process handles one message body.
func (p *Processor) Process(ctx context.Context, messageID, body string) Outcome {
	userID, err := services.ParseUserDeletedEvent(body)
	if err != nil {
		p.logger.Warn("Dropping malformed user deleted event",
			zap.String("message_id", messageID),
			zap.Error(err))
		return Dropped
	}

	result, err := p.service.DeleteUserData(ctx, userID)
	if err != nil {
		p.logger.Error("Failed to delete user data",
			zap.String("message_id", messageID),
			zap.Int64("user_id", userID),
			zap.Error(err))
		return Failed
	}

	p.logger.Info("User deleted event processed",
		zap.String("message_id", messageID),
		zap.Int64("user_id", userID),
		zap.Int64("tax_returns_deleted", result.TaxReturnsDeleted),
		zap.Int("images_failed", result.ImagesFailed))
	return Processed
}

// HandleSQSEvent processes a Lambda batch and reports the failed messages so
// only those are redelivered.
func (p *Processor) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	if p.dumpEvents {
		p.logger.Debug("Received SQS event",
			zap.Int("records", len(event.Records)),
			zap.String("event", spew.Sdump(event)))
	}

	var response events.SQSEventResponse
	counts := map[Outcome]int{}
	for _, record := range event.Records {
		outcome := p.Process(ctx, record.MessageId, record.Body)
		counts[outcome]++
		if outcome == Failed {
			response.BatchItemFailures = append(response.BatchItemFailures,
				events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
	}

	p.logger.Info("User deleted batch complete",
		zap.Int("total_messages", len(event.Records)),
		zap.Int("processed", counts[Processed]),
		zap.Int("dropped", counts[Dropped]),
		zap.Int("failed", counts[Failed]))
	return response, nil
}

// PollConfig controls Poll.
type PollConfig struct {
	MaxMessages int32
	WaitSeconds int32
	// ErrorBackoff is the pause after a failed receive.
	ErrorBackoff time.Duration
}

// Poll long-polls queue until ctx is cancelled. Processed and dropped
// messages are deleted; failed ones are left to become visible again.
func (p *Processor) Poll(ctx context.Context, queue interfaces.MessageQueue, cfg PollConfig) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		messages, err := queue.Receive(ctx, cfg.MaxMessages, cfg.WaitSeconds)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			p.logger.Error("Failed to receive user deleted events", zap.Error(err))
			select {
			case <-time.After(cfg.ErrorBackoff):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		for _, msg := range messages {
			if p.Process(ctx, msg.ID, msg.Body) == Failed {
				continue
			}
			if err := queue.Delete(ctx, msg.ReceiptHandle); err != nil {
				p.logger.Error("Failed to delete queue message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
	}
}
