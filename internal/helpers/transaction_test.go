package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/taxdesk/tax-service/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

func serializationFailure() error {
	return fmt.Errorf("failed to commit transaction: %w", &pgconn.PgError{Code: "40001"})
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(serializationFailure()))
	assert.False(t, IsSerializationFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("connection reset")))
	assert.False(t, IsSerializationFailure(nil))
}

func TestRetrySerializable(t *testing.T) {
	tests := []struct {
		name         string
		maxRetries   int
		results      []error
		wantAttempts int
		wantErr      bool
	}{
		{
			name:         "succeeds first time",
			maxRetries:   3,
			results:      []error{nil},
			wantAttempts: 1,
		},
		{
			name:         "retries serialization failures",
			maxRetries:   3,
			results:      []error{serializationFailure(), serializationFailure(), nil},
			wantAttempts: 3,
		},
		{
			name:         "gives up after max retries",
			maxRetries:   2,
			results:      []error{serializationFailure(), serializationFailure(), serializationFailure(), nil},
			wantAttempts: 3,
			wantErr:      true,
		},
		{
			name:         "other errors are not retried",
			maxRetries:   3,
			results:      []error{errors.New("unique violation"), nil},
			wantAttempts: 1,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attempts := 0
			err := RetrySerializable(tt.maxRetries, func() error {
				result := tt.results[attempts]
				attempts++
				return result
			})

			assert.Equal(t, tt.wantAttempts, attempts)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSerializableOptions(t *testing.T) {
	assert.Equal(t, "serializable", string(serializable.IsoLevel))
}
