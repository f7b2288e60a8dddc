package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsclient "github.com/taxdesk/tax-service/internal/client/aws"
	"github.com/taxdesk/tax-service/internal/cleanup"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/server"
	"github.com/taxdesk/tax-service/internal/services"
	"go.uber.org/zap"
)

// Runs as an SQS-triggered Lambda when AWS_LAMBDA_FUNCTION_NAME is set,
// otherwise long-polls USER_DELETED_QUEUE_URL.
func main() {
	logger.InitLogger(helpers.StageLocal)
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	deps, err := server.Bootstrap(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize user cleanup", zap.Error(err))
	}
	defer deps.Pool.Close()

	processor := cleanup.NewProcessor(services.NewAccountCleanupService(deps.Queries, deps.Tx, deps.Store)).
		WithEventDump(deps.Stage != helpers.StageProd)

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(processor.HandleSQSEvent)
		return
	}

	queueURL := os.Getenv("USER_DELETED_QUEUE_URL")
	if queueURL == "" {
		logger.Fatal("USER_DELETED_QUEUE_URL is required when not running in Lambda")
	}
	cfg := cleanup.PollConfig{
		MaxMessages:  int32(helpers.GetEnvInt("CLEANUP_MAX_MESSAGES", 10)),
		WaitSeconds:  int32(helpers.GetEnvInt("CLEANUP_WAIT_SECONDS", 20)),
		ErrorBackoff: helpers.GetEnvDuration("CLEANUP_ERROR_BACKOFF", 5*time.Second),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Polling for user deleted events", zap.String("queue_url", queueURL))
	if err := processor.Poll(ctx, awsclient.NewSQSQueue(deps.AWSConfig, queueURL), cfg); err != nil {
		logger.Error("Polling stopped", zap.Error(err))
	}
	logger.Info("User cleanup exiting")
}
