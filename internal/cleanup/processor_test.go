package cleanup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/cleanup"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/mocks"
	"github.com/taxdesk/tax-service/internal/types/params"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	logger.InitLogger("test")
}

func TestProcessor_Process(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(m *mocks.MockAccountCleanupService)
		want      cleanup.Outcome
	}{
		{
			name: "bare user id",
			body: "17",
			setupMock: func(m *mocks.MockAccountCleanupService) {
				m.EXPECT().DeleteUserData(gomock.Any(), int64(17)).
					Return(&params.CleanupResult{UserID: 17, TaxReturnsDeleted: 2}, nil)
			},
			want: cleanup.Processed,
		},
		{
			name: "json payload",
			body: `{"userId": 23}`,
			setupMock: func(m *mocks.MockAccountCleanupService) {
				m.EXPECT().DeleteUserData(gomock.Any(), int64(23)).
					Return(&params.CleanupResult{UserID: 23}, nil)
			},
			want: cleanup.Processed,
		},
		{
			name:      "malformed payload",
			body:      "not-a-user",
			setupMock: func(m *mocks.MockAccountCleanupService) {},
			want:      cleanup.Dropped,
		},
		{
			name: "database failure",
			body: "17",
			setupMock: func(m *mocks.MockAccountCleanupService) {
				m.EXPECT().DeleteUserData(gomock.Any(), int64(17)).Return(nil, errors.New("connection reset"))
			},
			want: cleanup.Failed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAccountCleanupService(ctrl)
			tt.setupMock(service)

			got := cleanup.NewProcessor(service).Process(context.Background(), "msg-1", tt.body)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProcessor_HandleSQSEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAccountCleanupService(ctrl)

	service.EXPECT().DeleteUserData(gomock.Any(), int64(1)).Return(&params.CleanupResult{UserID: 1}, nil)
	service.EXPECT().DeleteUserData(gomock.Any(), int64(2)).Return(nil, errors.New("timeout"))

	resp, err := cleanup.NewProcessor(service).HandleSQSEvent(context.Background(), events.SQSEvent{
		Records: []events.SQSMessage{
			{MessageId: "a", Body: "1"},
			{MessageId: "b", Body: "2"},
			{MessageId: "c", Body: "{}"},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.BatchItemFailures, 1)
	assert.Equal(t, "b", resp.BatchItemFailures[0].ItemIdentifier)
}

func TestProcessor_EventDump(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    int
	}{
		{name: "non-prod dumps the batch", enabled: true, want: 1},
		{name: "prod stays quiet", enabled: false, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			previous := logger.Log
			logger.Log = zap.New(core)
			defer func() { logger.Log = previous }()

			ctrl := gomock.NewController(t)
			service := mocks.NewMockAccountCleanupService(ctrl)
			service.EXPECT().DeleteUserData(gomock.Any(), int64(17)).Return(&params.CleanupResult{UserID: 17}, nil)

			_, err := cleanup.NewProcessor(service).WithEventDump(tt.enabled).HandleSQSEvent(context.Background(), events.SQSEvent{
				Records: []events.SQSMessage{{MessageId: "m1", Body: "17"}},
			})
			require.NoError(t, err)

			dumps := logs.FilterMessage("Received SQS event").All()
			require.Len(t, dumps, tt.want)
			if tt.want > 0 {
				assert.Contains(t, dumps[0].ContextMap()["event"], "m1")
				assert.Equal(t, int64(1), dumps[0].ContextMap()["records"])
			}
		})
	}
}

func TestProcessor_Poll(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAccountCleanupService(ctrl)
	queue := mocks.NewMockMessageQueue(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := cleanup.PollConfig{MaxMessages: 10, WaitSeconds: 20, ErrorBackoff: time.Millisecond}

	gomock.InOrder(
		queue.EXPECT().Receive(gomock.Any(), int32(10), int32(20)).Return(nil, errors.New("throttled")),
		queue.EXPECT().Receive(gomock.Any(), int32(10), int32(20)).Return([]interfaces.QueueMessage{
			{ID: "ok", Body: "5", ReceiptHandle: "rh-ok"},
			{ID: "bad", Body: "garbage", ReceiptHandle: "rh-bad"},
			{ID: "retry", Body: "6", ReceiptHandle: "rh-retry"},
		}, nil),
		queue.EXPECT().Receive(gomock.Any(), int32(10), int32(20)).DoAndReturn(
			func(context.Context, int32, int32) ([]interfaces.QueueMessage, error) {
				cancel()
				return nil, context.Canceled
			}),
	)
	service.EXPECT().DeleteUserData(gomock.Any(), int64(5)).Return(&params.CleanupResult{UserID: 5}, nil)
	service.EXPECT().DeleteUserData(gomock.Any(), int64(6)).Return(nil, errors.New("deadlock"))
	queue.EXPECT().Delete(gomock.Any(), "rh-ok").Return(nil)
	queue.EXPECT().Delete(gomock.Any(), "rh-bad").Return(nil)

	err := cleanup.NewProcessor(service).Poll(ctx, queue, cfg)

	assert.NoError(t, err)
}
