package services

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/helpers"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/logger"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
	"go.uber.org/zap"
)

// ErrImageStoreDisabled is returned by image operations when no object store
// is configured.
var ErrImageStoreDisabled = errors.New("W2 image storage is not configured")

// W2Service handles wage statements and their scanned images
type W2Service struct {
	queries db.Querier
	tx      interfaces.TxRunner
	store   interfaces.ObjectStore
	calc    *returnCalculator
	logger  *zap.Logger
}

// NewW2Service creates a new W2 service. store may be nil, in which case
// image uploads and downloads fail with ErrImageStoreDisabled.
func NewW2Service(queries db.Querier, tx interfaces.TxRunner, store interfaces.ObjectStore, calculator *taxcalc.Calculator) *W2Service {
	return &W2Service{
		queries: queries,
		tx:      tx,
		store:   store,
		calc:    &returnCalculator{calculator: calculator, logger: logger.Named("w2_service")},
		logger:  logger.Named("w2_service"),
	}
}

var _ interfaces.W2Service = (*W2Service)(nil)

func validateW2(in params.W2Params) error {
	for _, amount := range []decimal.Decimal{
		in.WagesAndTips, in.FederalTaxWithheld, in.StateTaxWithheld, in.SocialSecurityWithheld, in.MedicareWithheld,
	} {
		if amount.IsNegative() {
			return invalid(constants.InvalidAmount)
		}
	}
	return nil
}

func createW2Params(in params.W2Params, ret db.TaxReturn) db.CreateW2Params {
	return db.CreateW2Params{
		TaxReturnID:               ret.ID,
		UserID:                    ret.UserID,
		Year:                      ret.Year,
		EmployerName:              in.EmployerName,
		EmployerStreetAddress:     in.EmployerStreetAddress,
		EmployerCity:              in.EmployerCity,
		EmployerState:             in.EmployerState,
		EmployerZip:               in.EmployerZip,
		Ein:                       in.Ein,
		WagesAndTips:              in.WagesAndTips,
		FederalIncomeTaxWithheld:  in.FederalTaxWithheld,
		StateIncomeTaxWithheld:    in.StateTaxWithheld,
		SocialSecurityTaxWithheld: in.SocialSecurityWithheld,
		MedicareTaxWithheld:       in.MedicareWithheld,
	}
}

func updateW2Params(id int64, in params.W2Params) db.UpdateW2Params {
	return db.UpdateW2Params{
		ID:                        id,
		EmployerName:              in.EmployerName,
		EmployerStreetAddress:     in.EmployerStreetAddress,
		EmployerCity:              in.EmployerCity,
		EmployerState:             in.EmployerState,
		EmployerZip:               in.EmployerZip,
		Ein:                       in.Ein,
		WagesAndTips:              in.WagesAndTips,
		FederalIncomeTaxWithheld:  in.FederalTaxWithheld,
		StateIncomeTaxWithheld:    in.StateTaxWithheld,
		SocialSecurityTaxWithheld: in.SocialSecurityWithheld,
		MedicareTaxWithheld:       in.MedicareWithheld,
	}
}

// ownedW2 loads a W2 and checks that it belongs to userID.
func ownedW2(ctx context.Context, q db.Querier, userID, w2ID int64) (db.W2, error) {
	row, err := q.GetW2(ctx, w2ID)
	if err != nil {
		if isNoRows(err) {
			return db.W2{}, notFound(constants.W2NotFound)
		}
		return db.W2{}, fmt.Errorf("failed to get W2: %w", err)
	}
	if row.UserID != userID {
		return db.W2{}, forbidden(constants.AccessDenied)
	}
	return row, nil
}

// CreateW2 adds a wage statement to a return
func (s *W2Service) CreateW2(ctx context.Context, in params.W2Params) (*taxcalc.W2, error) {
	if err := validateW2(in); err != nil {
		return nil, err
	}

	var w2 taxcalc.W2
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		ret, err := ownedReturn(ctx, q, in.UserID, in.TaxReturnID, true)
		if err != nil {
			return err
		}
		row, err := q.CreateW2(ctx, createW2Params(in, ret))
		if err != nil {
			return fmt.Errorf("failed to create W2: %w", err)
		}
		w2 = w2FromDB(row)
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("W2 created",
		zap.Int64("w2_id", w2.ID),
		zap.Int64("tax_return_id", in.TaxReturnID))
	return &w2, nil
}

// GetW2 returns a single wage statement
func (s *W2Service) GetW2(ctx context.Context, userID, w2ID int64) (*taxcalc.W2, error) {
	row, err := ownedW2(ctx, s.queries, userID, w2ID)
	if err != nil {
		return nil, err
	}
	w2 := w2FromDB(row)
	return &w2, nil
}

// ListW2s lists a user's wage statements, optionally for one year
func (s *W2Service) ListW2s(ctx context.Context, in params.ListW2sParams) ([]taxcalc.W2, error) {
	var (
		rows []db.W2
		err  error
	)
	if in.Year != nil {
		rows, err = s.queries.ListW2sByUserAndYear(ctx, db.ListW2sByUserAndYearParams{
			UserID: in.UserID,
			Year:   int32(*in.Year),
		})
	} else {
		rows, err = s.queries.ListW2sByUser(ctx, in.UserID)
	}
	if err != nil {
		s.logger.Error("Failed to list W2s", zap.Int64("user_id", in.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to list W2s: %w", err)
	}
	return w2sFromDB(rows), nil
}

// ListW2sByTaxReturn lists the wage statements of a return
func (s *W2Service) ListW2sByTaxReturn(ctx context.Context, userID, taxReturnID int64) ([]taxcalc.W2, error) {
	if _, err := ownedReturn(ctx, s.queries, userID, taxReturnID, false); err != nil {
		return nil, err
	}
	rows, err := s.queries.ListW2sByTaxReturn(ctx, taxReturnID)
	if err != nil {
		return nil, fmt.Errorf("failed to list W2s: %w", err)
	}
	return w2sFromDB(rows), nil
}

// ReplaceW2s makes in.W2s the complete set of wage statements on a return.
// An empty list removes every statement.
func (s *W2Service) ReplaceW2s(ctx context.Context, in params.ReplaceW2sParams) ([]taxcalc.W2, error) {
	for _, w := range in.W2s {
		if err := validateW2(w); err != nil {
			return nil, err
		}
	}

	var (
		result  []taxcalc.W2
		removed []string
	)
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		removed = nil
		ret, err := ownedReturn(ctx, q, in.UserID, in.TaxReturnID, true)
		if err != nil {
			return err
		}
		existing, err := q.ListW2sByTaxReturn(ctx, in.TaxReturnID)
		if err != nil {
			return fmt.Errorf("failed to list W2s: %w", err)
		}
		current := make(map[int64]db.W2, len(existing))
		for _, row := range existing {
			current[row.ID] = row
		}

		kept := make(map[int64]bool, len(in.W2s))
		result = make([]taxcalc.W2, 0, len(in.W2s))
		for _, w := range in.W2s {
			var row db.W2
			if w.ID != 0 {
				if _, ok := current[w.ID]; !ok {
					return notFound(constants.W2NotFound)
				}
				row, err = q.UpdateW2(ctx, updateW2Params(w.ID, w))
				if err != nil {
					return fmt.Errorf("failed to update W2 %d: %w", w.ID, err)
				}
			} else {
				row, err = q.CreateW2(ctx, createW2Params(w, ret))
				if err != nil {
					return fmt.Errorf("failed to create W2: %w", err)
				}
			}
			kept[row.ID] = true
			result = append(result, w2FromDB(row))
		}

		for _, row := range existing {
			if kept[row.ID] {
				continue
			}
			if err := q.DeleteW2(ctx, row.ID); err != nil {
				return fmt.Errorf("failed to delete W2 %d: %w", row.ID, err)
			}
			if key := helpers.NullableTextToString(row.ImageKey); key != "" {
				removed = append(removed, key)
			}
		}
		if removed, err = unreferencedKeys(ctx, q, removed); err != nil {
			return err
		}

		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return nil, err
	}

	deleteImages(ctx, s.store, s.logger, removed)
	s.logger.Info("W2s replaced",
		zap.Int64("tax_return_id", in.TaxReturnID),
		zap.Int("count", len(result)))
	return result, nil
}

// UpdateW2 replaces the amounts and employer details of a wage statement
func (s *W2Service) UpdateW2(ctx context.Context, in params.W2Params) (*taxcalc.W2, error) {
	if err := validateW2(in); err != nil {
		return nil, err
	}

	var w2 taxcalc.W2
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		existing, err := ownedW2(ctx, q, in.UserID, in.ID)
		if err != nil {
			return err
		}
		ret, err := ownedReturn(ctx, q, in.UserID, existing.TaxReturnID, true)
		if err != nil {
			return err
		}
		row, err := q.UpdateW2(ctx, updateW2Params(in.ID, in))
		if err != nil {
			return fmt.Errorf("failed to update W2: %w", err)
		}
		w2 = w2FromDB(row)
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &w2, nil
}

// DeleteW2 removes a wage statement and its image
func (s *W2Service) DeleteW2(ctx context.Context, userID, w2ID int64) error {
	var imageKeys []string
	err := s.tx.InTx(ctx, func(q db.Querier) error {
		imageKeys = nil
		existing, err := ownedW2(ctx, q, userID, w2ID)
		if err != nil {
			return err
		}
		ret, err := ownedReturn(ctx, q, userID, existing.TaxReturnID, true)
		if err != nil {
			return err
		}
		if err := q.DeleteW2(ctx, w2ID); err != nil {
			return fmt.Errorf("failed to delete W2: %w", err)
		}
		if key := helpers.NullableTextToString(existing.ImageKey); key != "" {
			if imageKeys, err = unreferencedKeys(ctx, q, []string{key}); err != nil {
				return err
			}
		}
		_, err = s.calc.recalculate(ctx, q, ret)
		return err
	})
	if err != nil {
		return err
	}

	deleteImages(ctx, s.store, s.logger, imageKeys)
	s.logger.Info("W2 deleted", zap.Int64("w2_id", w2ID))
	return nil
}

// UploadImage stores a scan of a wage statement under a key derived from its
// content. Uploading the same bytes twice yields the same key.
func (s *W2Service) UploadImage(ctx context.Context, in params.UploadW2ImageParams) (*taxcalc.W2, error) {
	if s.store == nil {
		return nil, ErrImageStoreDisabled
	}
	if len(in.Data) == 0 {
		return nil, invalid(constants.InvalidImage)
	}
	if len(in.Data) > constants.MaxImageSize {
		return nil, invalid(constants.ImageTooLarge)
	}
	mediaType, err := imageMediaType(in.ContentType)
	if err != nil {
		return nil, err
	}

	existing, err := ownedW2(ctx, s.queries, in.UserID, in.W2ID)
	if err != nil {
		return nil, err
	}

	key := ImageKey(in.Data, mediaType)
	if err := s.store.PutObject(ctx, key, mediaType, in.Data); err != nil {
		s.logger.Error("Failed to store W2 image",
			zap.Int64("w2_id", in.W2ID),
			zap.String("image_key", key),
			zap.Error(err))
		return nil, fmt.Errorf("failed to store W2 image: %w", err)
	}

	var (
		row      db.W2
		replaced []string
	)
	err = s.tx.InTx(ctx, func(q db.Querier) error {
		replaced = nil
		var err error
		row, err = q.UpdateW2ImageKey(ctx, db.UpdateW2ImageKeyParams{
			ID:       in.W2ID,
			ImageKey: helpers.StringToNullableText(key),
		})
		if err != nil {
			if isNoRows(err) {
				return notFound(constants.W2NotFound)
			}
			return fmt.Errorf("failed to save W2 image key: %w", err)
		}
		// The previous scan is dropped once no statement points at it.
		if old := helpers.NullableTextToString(existing.ImageKey); old != "" && old != key {
			replaced, err = unreferencedKeys(ctx, q, []string{old})
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	deleteImages(ctx, s.store, s.logger, replaced)

	s.logger.Info("W2 image uploaded",
		zap.Int64("w2_id", in.W2ID),
		zap.String("image_key", key),
		zap.Int("size", len(in.Data)))
	w2 := w2FromDB(row)
	return &w2, nil
}

// GetImage returns the stored scan of a wage statement
func (s *W2Service) GetImage(ctx context.Context, userID, w2ID int64) (*params.W2Image, error) {
	if s.store == nil {
		return nil, ErrImageStoreDisabled
	}
	row, err := ownedW2(ctx, s.queries, userID, w2ID)
	if err != nil {
		return nil, err
	}
	key := helpers.NullableTextToString(row.ImageKey)
	if key == "" {
		return nil, notFound(constants.ImageNotFound)
	}

	obj, err := s.store.GetObject(ctx, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrObjectNotFound) {
			s.logger.Warn("W2 image key has no stored object",
				zap.Int64("w2_id", w2ID),
				zap.String("image_key", key))
			return nil, notFound(constants.ImageNotFound)
		}
		return nil, fmt.Errorf("failed to read W2 image: %w", err)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}
	return &params.W2Image{Key: key, ContentType: contentType, Data: obj.Body}, nil
}

// imageMediaType accepts images and PDFs and drops any parameters.
func imageMediaType(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", invalid(constants.InvalidImage)
	}
	if !strings.HasPrefix(mediaType, "image/") && mediaType != "application/pdf" {
		return "", invalid(constants.InvalidImage)
	}
	return mediaType, nil
}

// ImageKey derives the storage key of an uploaded image: a name-based (MD5,
// version 3) UUID of the bytes followed by the media subtype as extension.
func ImageKey(data []byte, mediaType string) string {
	sum := md5.Sum(data)
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	id := uuid.Must(uuid.FromBytes(sum[:]))

	subtype := mediaType
	if i := strings.IndexByte(mediaType, '/'); i >= 0 {
		subtype = mediaType[i+1:]
	}
	return id.String() + "." + subtype
}
