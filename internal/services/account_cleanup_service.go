package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/types/params"
	"go.uber.org/zap"
)

// AccountCleanupService removes everything stored for a deleted user
type AccountCleanupService struct {
	queries db.Querier
	tx      interfaces.TxRunner
	store   interfaces.ObjectStore
	logger  *zap.Logger
}

// NewAccountCleanupService creates a new account cleanup service
func NewAccountCleanupService(queries db.Querier, tx interfaces.TxRunner, store interfaces.ObjectStore) *AccountCleanupService {
	return &AccountCleanupService{
		queries: queries,
		tx:      tx,
		store:   store,
		logger:  logger.Named("account_cleanup_service"),
	}
}

var _ interfaces.AccountCleanupService = (*AccountCleanupService)(nil)

// DeleteUserData deletes every return of a user along with its components,
// then removes the user's W2 images. Image failures are logged and counted
// but do not fail the call, so a redelivered event does not repeat the
// database work.
func (s *AccountCleanupService) DeleteUserData(ctx context.Context, userID int64) (*params.CleanupResult, error) {
	result := &params.CleanupResult{UserID: userID}

	var keys []string
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		var err error
		keys, err = q.ListW2ImageKeysByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to list W2 image keys: %w", err)
		}
		result.TaxReturnsDeleted, err = q.DeleteTaxReturnsByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete tax returns: %w", err)
		}
		keys, err = unreferencedKeys(ctx, q, keys)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to delete user data", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	result.ImagesFailed = deleteImages(ctx, s.store, s.logger, keys)
	if s.store != nil {
		result.ImagesDeleted = len(keys) - result.ImagesFailed
	}

	s.logger.Info("User data deleted",
		zap.Int64("user_id", userID),
		zap.Int64("tax_returns_deleted", result.TaxReturnsDeleted),
		zap.Int("images_deleted", result.ImagesDeleted),
		zap.Int("images_failed", result.ImagesFailed))
	return result, nil
}

type userDeletedEvent struct {
	UserID *int64 `json:"userId"`
}

// ParseUserDeletedEvent reads the user id from a user-deleted message. The
// body is either a bare id or an object with a userId field.
func ParseUserDeletedEvent(body string) (int64, error) {
	trimmed := strings.TrimSpace(body)
	if id, err := strconv.ParseInt(strings.Trim(trimmed, `"`), 10, 64); err == nil {
		if id <= 0 {
			return 0, fmt.Errorf("invalid user id %d", id)
		}
		return id, nil
	}

	var event userDeletedEvent
	if err := json.Unmarshal([]byte(trimmed), &event); err != nil {
		return 0, fmt.Errorf("failed to parse user deleted event: %w", err)
	}
	if event.UserID == nil || *event.UserID <= 0 {
		return 0, fmt.Errorf("user deleted event has no valid userId")
	}
	return *event.UserID, nil
}
