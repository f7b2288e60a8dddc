package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
	"go.uber.org/zap"
)

// TaxReturnService handles business logic for tax return headers and totals
type TaxReturnService struct {
	queries db.Querier
	tx      interfaces.TxRunner
	store   interfaces.ObjectStore
	calc    *returnCalculator
	logger  *zap.Logger
}

// NewTaxReturnService creates a new tax return service. store may be nil when
// W-2 images are not kept.
func NewTaxReturnService(queries db.Querier, tx interfaces.TxRunner, store interfaces.ObjectStore, calculator *taxcalc.Calculator) *TaxReturnService {
	return &TaxReturnService{
		queries: queries,
		tx:      tx,
		store:   store,
		calc:    &returnCalculator{calculator: calculator, logger: logger.Named("tax_return_service")},
		logger:  logger.Named("tax_return_service"),
	}
}

var _ interfaces.TaxReturnService = (*TaxReturnService)(nil)

func validateHeader(year int, status taxcalc.FilingStatus) error {
	if year < constants.MinimumTaxReturnYear {
		return invalid(constants.InvalidYear)
	}
	if !status.Valid() {
		return invalid(constants.InvalidFilingStatus)
	}
	return nil
}

// CreateTaxReturn stores a new return header and its initial totals
func (s *TaxReturnService) CreateTaxReturn(ctx context.Context, in params.CreateTaxReturnParams) (*taxcalc.ReturnAggregate, error) {
	if err := validateHeader(in.Year, in.FilingStatus); err != nil {
		return nil, err
	}
	dob, err := helpers.StringToNullableDate(in.PersonalInfo.DateOfBirth)
	if err != nil {
		return nil, invalid(constants.InvalidDateOfBirth)
	}

	var result taxcalc.ReturnAggregate
	err = s.tx.InTx(ctx, func(q db.Querier) error {
		info := in.PersonalInfo
		row, err := q.CreateTaxReturn(ctx, db.CreateTaxReturnParams{
			UserID:       in.UserID,
			Year:         int32(in.Year),
			FilingStatus: int32(in.FilingStatus),
			FirstName:    info.FirstName,
			LastName:     info.LastName,
			Email:        info.Email,
			PhoneNumber:  info.PhoneNumber,
			Address:      info.Address,
			City:         info.City,
			State:        info.State,
			Zip:          info.Zip,
			DateOfBirth:  dob,
			Ssn:          info.SSN,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return duplicate(constants.DuplicateTaxReturn)
			}
			return fmt.Errorf("failed to create tax return: %w", err)
		}

		result, err = s.calc.recalculate(ctx, q, row)
		if taxcalc.IsConfigurationError(err) {
			return invalid(constants.UnsupportedTaxYear)
		}
		return err
	})
	if err != nil {
		s.logger.Error("Failed to create tax return",
			zap.Int64("user_id", in.UserID),
			zap.Int("year", in.Year),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Tax return created",
		zap.Int64("tax_return_id", result.Return.ID),
		zap.Int64("user_id", in.UserID),
		zap.Int("year", in.Year))
	return &result, nil
}

// GetTaxReturn returns a return with all components and freshly computed totals
func (s *TaxReturnService) GetTaxReturn(ctx context.Context, userID, taxReturnID int64) (*taxcalc.ReturnAggregate, error) {
	row, err := ownedReturn(ctx, s.queries, userID, taxReturnID, false)
	if err != nil {
		return nil, err
	}
	agg, err := loadAggregate(ctx, s.queries, row)
	if err != nil {
		return nil, err
	}
	result, err := s.calc.calculate(agg)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTaxReturns lists a user's returns with their stored totals
func (s *TaxReturnService) ListTaxReturns(ctx context.Context, in params.ListTaxReturnsParams) ([]taxcalc.TaxReturn, error) {
	var (
		rows []db.TaxReturn
		err  error
	)
	if in.Year != nil {
		rows, err = s.queries.ListTaxReturnsByUserAndYear(ctx, db.ListTaxReturnsByUserAndYearParams{
			UserID: in.UserID,
			Year:   int32(*in.Year),
		})
	} else {
		rows, err = s.queries.ListTaxReturnsByUser(ctx, in.UserID)
	}
	if err != nil {
		s.logger.Error("Failed to list tax returns", zap.Int64("user_id", in.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to list tax returns: %w", err)
	}

	returns := make([]taxcalc.TaxReturn, 0, len(rows))
	for _, row := range rows {
		ret, err := taxReturnFromDB(row)
		if err != nil {
			return nil, err
		}
		returns = append(returns, ret)
	}
	return returns, nil
}

// UpdateTaxReturn replaces the header of a return. W-2s, deductions, credits
// and other income stay attached; totals are recomputed for the new header.
func (s *TaxReturnService) UpdateTaxReturn(ctx context.Context, in params.UpdateTaxReturnParams) (*taxcalc.ReturnAggregate, error) {
	if err := validateHeader(in.Year, in.FilingStatus); err != nil {
		return nil, err
	}
	dob, err := helpers.StringToNullableDate(in.PersonalInfo.DateOfBirth)
	if err != nil {
		return nil, invalid(constants.InvalidDateOfBirth)
	}

	var result taxcalc.ReturnAggregate
	err = s.tx.InTx(ctx, func(q db.Querier) error {
		if _, err := ownedReturn(ctx, q, in.UserID, in.ID, true); err != nil {
			return err
		}

		info := in.PersonalInfo
		row, err := q.UpdateTaxReturnPersonalInfo(ctx, db.UpdateTaxReturnPersonalInfoParams{
			ID:           in.ID,
			Year:         int32(in.Year),
			FilingStatus: int32(in.FilingStatus),
			FirstName:    info.FirstName,
			LastName:     info.LastName,
			Email:        info.Email,
			PhoneNumber:  info.PhoneNumber,
			Address:      info.Address,
			City:         info.City,
			State:        info.State,
			Zip:          info.Zip,
			DateOfBirth:  dob,
			Ssn:          info.SSN,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return duplicate(constants.DuplicateTaxReturn)
			}
			return fmt.Errorf("failed to update tax return: %w", err)
		}

		result, err = s.calc.recalculate(ctx, q, row)
		if taxcalc.IsConfigurationError(err) {
			return invalid(constants.UnsupportedTaxYear)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tax return updated",
		zap.Int64("tax_return_id", in.ID),
		zap.Int64("user_id", in.UserID))
	return &result, nil
}

// DeleteTaxReturn removes a return and, through cascades, all of its components
func (s *TaxReturnService) DeleteTaxReturn(ctx context.Context, userID, taxReturnID int64) error {
	var imageKeys []string
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		imageKeys = nil
		if _, err := ownedReturn(ctx, q, userID, taxReturnID, true); err != nil {
			return err
		}
		w2s, err := q.ListW2sByTaxReturn(ctx, taxReturnID)
		if err != nil {
			return fmt.Errorf("failed to list W2s: %w", err)
		}
		for _, w2 := range w2s {
			if key := helpers.NullableTextToString(w2.ImageKey); key != "" {
				imageKeys = append(imageKeys, key)
			}
		}
		if err := q.DeleteTaxReturn(ctx, taxReturnID); err != nil {
			return fmt.Errorf("failed to delete tax return: %w", err)
		}
		imageKeys, err = unreferencedKeys(ctx, q, imageKeys)
		return err
	})
	if err != nil {
		return err
	}

	deleteImages(ctx, s.store, s.logger, imageKeys)
	s.logger.Info("Tax return deleted",
		zap.Int64("tax_return_id", taxReturnID),
		zap.Int64("user_id", userID))
	return nil
}

// GetRefund returns the freshly computed totals of a return
func (s *TaxReturnService) GetRefund(ctx context.Context, userID, taxReturnID int64) (*taxcalc.Totals, error) {
	agg, err := s.GetTaxReturn(ctx, userID, taxReturnID)
	if err != nil {
		return nil, err
	}
	return &agg.Return.Totals, nil
}

// Recalculate recomputes and stores the totals of a return
func (s *TaxReturnService) Recalculate(ctx context.Context, userID, taxReturnID int64) (*taxcalc.ReturnAggregate, error) {
	var result taxcalc.ReturnAggregate
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		row, err := ownedReturn(ctx, q, userID, taxReturnID, true)
		if err != nil {
			return err
		}
		result, err = s.calc.recalculate(ctx, q, row)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FilingStatuses lists every supported filing status
func (s *TaxReturnService) FilingStatuses() []taxcalc.FilingStatus {
	return taxcalc.FilingStatuses()
}

// unreferencedKeys filters keys down to those no W2 row points at anymore.
// Image keys are derived from content, so two statements can share one.
func unreferencedKeys(ctx context.Context, q db.Querier, keys []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			continue
		}
		seen[key] = true
		count, err := q.CountW2sByImageKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to count W2 image references: %w", err)
		}
		if count == 0 {
			out = append(out, key)
		}
	}
	return out, nil
}

// deleteImages removes stored objects, logging rather than failing on errors.
// It returns how many keys could not be removed.
func deleteImages(ctx context.Context, store interfaces.ObjectStore, log *zap.Logger, keys []string) int {
	if store == nil {
		return 0
	}
	failed := 0
	for _, key := range keys {
		if err := store.DeleteObject(ctx, key); err != nil && !errors.Is(err, interfaces.ErrObjectNotFound) {
			failed++
			log.Warn("Failed to delete W2 image", zap.String("image_key", key), zap.Error(err))
		}
	}
	return failed
}
