package services_test

import (
	"context"
	"errors"
	"path"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/db"
	"github.com/taxdesk/tax-service/internal/interfaces"
	"github.com/taxdesk/tax-service/internal/mocks"
	"github.com/taxdesk/tax-service/internal/services"
	"github.com/taxdesk/tax-service/internal/testutil"
	"github.com/taxdesk/tax-service/internal/types/params"
	"go.uber.org/mock/gomock"
)

func newW2Service(t *testing.T, m *mocks.MockQuerier, store interfaces.ObjectStore) *services.W2Service {
	return services.NewW2Service(m, testutil.PassthroughTx{Queries: m}, store, newCalculator(t))
}

func w2Params(id int64, wages string) params.W2Params {
	return params.W2Params{
		ID:                 id,
		UserID:             testUserID,
		TaxReturnID:        testReturn,
		EmployerName:       "Initech",
		WagesAndTips:       d(wages),
		FederalTaxWithheld: d("0"),
	}
}

func TestW2Service_CreateW2(t *testing.T) {
	tests := []struct {
		name        string
		params      params.W2Params
		mockSetup   func(m *mocks.MockQuerier)
		wantErr     error
		errorString string
	}{
		{
			name:   "adds statement using the return's year",
			params: w2Params(0, "50000"),
			mockSetup: func(m *mocks.MockQuerier) {
				row := taxReturnRow()
				created := w2Row(1, "50000", "0", "0", "")
				expectOwnedReturn(m, row)
				m.EXPECT().CreateW2(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateW2Params) (db.W2, error) {
						assert.Equal(t, int32(2023), arg.Year)
						assert.Equal(t, testUserID, arg.UserID)
						assert.Equal(t, "50000", arg.WagesAndTips.String())
						return created, nil
					})
				expectRecalculate(m, row, components{w2s: []db.W2{created}}, nil)
			},
		},
		{
			name: "negative withholding",
			params: func() params.W2Params {
				p := w2Params(0, "50000")
				p.MedicareWithheld = d("-5")
				return p
			}(),
			mockSetup:   func(m *mocks.MockQuerier) {},
			wantErr:     services.ErrInvalidInput,
			errorString: constants.InvalidAmount,
		},
		{
			name:   "return not found",
			params: w2Params(0, "50000"),
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetTaxReturnForUpdate(gomock.Any(), testReturn).Return(db.TaxReturn{}, pgx.ErrNoRows)
			},
			wantErr:     services.ErrNotFound,
			errorString: constants.TaxReturnNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			got, err := newW2Service(t, mockQuerier, nil).CreateW2(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.errorString)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), got.ID)
			assert.Equal(t, 2023, got.Year)
		})
	}
}

func TestW2Service_GetW2(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", "key.png"), nil).Times(2)
	mockQuerier.EXPECT().GetW2(gomock.Any(), int64(2)).Return(db.W2{}, pgx.ErrNoRows)

	service := newW2Service(t, mockQuerier, nil)

	got, err := service.GetW2(context.Background(), testUserID, 1)
	require.NoError(t, err)
	assert.Equal(t, "key.png", got.ImageKey)

	_, err = service.GetW2(context.Background(), otherUserID, 1)
	assert.ErrorIs(t, err, services.ErrForbidden)

	_, err = service.GetW2(context.Background(), testUserID, 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestW2Service_ListW2s(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	year := 2023
	mockQuerier.EXPECT().ListW2sByUserAndYear(gomock.Any(), db.ListW2sByUserAndYearParams{UserID: testUserID, Year: 2023}).
		Return([]db.W2{w2Row(1, "100", "0", "0", "")}, nil)
	mockQuerier.EXPECT().ListW2sByUser(gomock.Any(), testUserID).Return(nil, errors.New("timeout"))

	service := newW2Service(t, mockQuerier, nil)

	got, err := service.ListW2s(context.Background(), params.ListW2sParams{UserID: testUserID, Year: &year})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = service.ListW2s(context.Background(), params.ListW2sParams{UserID: testUserID})
	assert.ErrorContains(t, err, "failed to list W2s")
}

func TestW2Service_ReplaceW2s(t *testing.T) {
	tests := []struct {
		name      string
		w2s       []params.W2Params
		mockSetup func(m *mocks.MockQuerier, store *mocks.MockObjectStore)
		wantIDs   []int64
		wantErr   error
	}{
		{
			name: "updates listed, creates new and deletes missing",
			w2s:  []params.W2Params{w2Params(1, "40000"), w2Params(0, "10000")},
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				row := taxReturnRow()
				expectOwnedReturn(m, row)
				m.EXPECT().ListW2sByTaxReturn(gomock.Any(), testReturn).Return([]db.W2{
					w2Row(1, "30000", "0", "0", ""),
					w2Row(2, "5000", "0", "0", "old.png"),
				}, nil)
				m.EXPECT().UpdateW2(gomock.Any(), gomock.Any()).Return(w2Row(1, "40000", "0", "0", ""), nil)
				m.EXPECT().CreateW2(gomock.Any(), gomock.Any()).Return(w2Row(3, "10000", "0", "0", ""), nil)
				m.EXPECT().DeleteW2(gomock.Any(), int64(2)).Return(nil)
				m.EXPECT().CountW2sByImageKey(gomock.Any(), "old.png").Return(int64(0), nil)
				expectRecalculate(m, row, components{w2s: []db.W2{
					w2Row(1, "40000", "0", "0", ""),
					w2Row(3, "10000", "0", "0", ""),
				}}, nil)
				store.EXPECT().DeleteObject(gomock.Any(), "old.png").Return(nil)
			},
			wantIDs: []int64{1, 3},
		},
		{
			name: "empty list deletes every statement",
			w2s:  nil,
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				row := taxReturnRow()
				expectOwnedReturn(m, row)
				m.EXPECT().ListW2sByTaxReturn(gomock.Any(), testReturn).Return([]db.W2{w2Row(1, "30000", "0", "0", "")}, nil)
				m.EXPECT().DeleteW2(gomock.Any(), int64(1)).Return(nil)
				expectRecalculate(m, row, components{}, nil)
			},
			wantIDs: []int64{},
		},
		{
			name: "unknown statement id",
			w2s:  []params.W2Params{w2Params(9, "100")},
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				expectOwnedReturn(m, taxReturnRow())
				m.EXPECT().ListW2sByTaxReturn(gomock.Any(), testReturn).Return([]db.W2{w2Row(1, "30000", "0", "0", "")}, nil)
			},
			wantErr: services.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			mockStore := mocks.NewMockObjectStore(ctrl)
			tt.mockSetup(mockQuerier, mockStore)

			got, err := newW2Service(t, mockQuerier, mockStore).ReplaceW2s(context.Background(), params.ReplaceW2sParams{
				UserID:      testUserID,
				TaxReturnID: testReturn,
				W2s:         tt.w2s,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			ids := make([]int64, 0, len(got))
			for _, w := range got {
				ids = append(ids, w.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestW2Service_DeleteW2_KeepsSharedImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockStore := mocks.NewMockObjectStore(ctrl)
	row := taxReturnRow()

	mockQuerier.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", "shared.png"), nil)
	expectOwnedReturn(mockQuerier, row)
	mockQuerier.EXPECT().DeleteW2(gomock.Any(), int64(1)).Return(nil)
	mockQuerier.EXPECT().CountW2sByImageKey(gomock.Any(), "shared.png").Return(int64(1), nil)
	expectRecalculate(mockQuerier, row, components{}, nil)

	err := newW2Service(t, mockQuerier, mockStore).DeleteW2(context.Background(), testUserID, 1)
	assert.NoError(t, err)
}

func TestW2Service_UploadImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nfake image body")
	key := services.ImageKey(png, "image/png")

	tests := []struct {
		name        string
		params      params.UploadW2ImageParams
		mockSetup   func(m *mocks.MockQuerier, store *mocks.MockObjectStore)
		wantErr     error
		errorString string
	}{
		{
			name:   "stores image under content key",
			params: params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "image/png", Data: png},
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				m.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", ""), nil)
				store.EXPECT().PutObject(gomock.Any(), key, "image/png", png).Return(nil)
				m.EXPECT().UpdateW2ImageKey(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.UpdateW2ImageKeyParams) (db.W2, error) {
						assert.Equal(t, key, arg.ImageKey.String)
						return w2Row(1, "100", "0", "0", key), nil
					})
			},
		},
		{
			name:   "drops replaced image nothing else references",
			params: params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "image/png", Data: png},
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				m.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", "old.png"), nil)
				store.EXPECT().PutObject(gomock.Any(), key, "image/png", png).Return(nil)
				m.EXPECT().UpdateW2ImageKey(gomock.Any(), gomock.Any()).Return(w2Row(1, "100", "0", "0", key), nil)
				m.EXPECT().CountW2sByImageKey(gomock.Any(), "old.png").Return(int64(0), nil)
				store.EXPECT().DeleteObject(gomock.Any(), "old.png").Return(nil)
			},
		},
		{
			name:   "keeps replaced image still shared",
			params: params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "image/png", Data: png},
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				m.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", "old.png"), nil)
				store.EXPECT().PutObject(gomock.Any(), key, "image/png", png).Return(nil)
				m.EXPECT().UpdateW2ImageKey(gomock.Any(), gomock.Any()).Return(w2Row(1, "100", "0", "0", key), nil)
				m.EXPECT().CountW2sByImageKey(gomock.Any(), "old.png").Return(int64(1), nil)
			},
		},
		{
			name:   "re-upload of the same image",
			params: params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "image/png", Data: png},
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				m.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", key), nil)
				store.EXPECT().PutObject(gomock.Any(), key, "image/png", png).Return(nil)
				m.EXPECT().UpdateW2ImageKey(gomock.Any(), gomock.Any()).Return(w2Row(1, "100", "0", "0", key), nil)
			},
		},
		{
			name:        "empty upload",
			params:      params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "image/png"},
			mockSetup:   func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {},
			wantErr:     services.ErrInvalidInput,
			errorString: constants.InvalidImage,
		},
		{
			name:        "unsupported content type",
			params:      params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "text/plain", Data: []byte("hi")},
			mockSetup:   func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {},
			wantErr:     services.ErrInvalidInput,
			errorString: constants.InvalidImage,
		},
		{
			name:        "too large",
			params:      params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "application/pdf", Data: make([]byte, constants.MaxImageSize+1)},
			mockSetup:   func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {},
			wantErr:     services.ErrInvalidInput,
			errorString: constants.ImageTooLarge,
		},
		{
			name:   "store failure",
			params: params.UploadW2ImageParams{UserID: testUserID, W2ID: 1, ContentType: "image/png; charset=binary", Data: png},
			mockSetup: func(m *mocks.MockQuerier, store *mocks.MockObjectStore) {
				m.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", ""), nil)
				store.EXPECT().PutObject(gomock.Any(), key, "image/png", png).Return(errors.New("bucket missing"))
			},
			errorString: "failed to store W2 image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			mockStore := mocks.NewMockObjectStore(ctrl)
			tt.mockSetup(mockQuerier, mockStore)

			got, err := newW2Service(t, mockQuerier, mockStore).UploadImage(context.Background(), tt.params)
			if tt.errorString != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				assert.Contains(t, err.Error(), tt.errorString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, key, got.ImageKey)
		})
	}
}

func TestW2Service_GetImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockStore := mocks.NewMockObjectStore(ctrl)
	mockQuerier.EXPECT().GetW2(gomock.Any(), int64(1)).Return(w2Row(1, "100", "0", "0", "abc.pdf"), nil)
	mockQuerier.EXPECT().GetW2(gomock.Any(), int64(2)).Return(w2Row(2, "100", "0", "0", ""), nil)
	mockQuerier.EXPECT().GetW2(gomock.Any(), int64(3)).Return(w2Row(3, "100", "0", "0", "gone.png"), nil)
	mockStore.EXPECT().GetObject(gomock.Any(), "abc.pdf").Return(&interfaces.StoredObject{Key: "abc.pdf", Body: []byte("%PDF")}, nil)
	mockStore.EXPECT().GetObject(gomock.Any(), "gone.png").Return(nil, interfaces.ErrObjectNotFound)

	service := newW2Service(t, mockQuerier, mockStore)

	img, err := service.GetImage(context.Background(), testUserID, 1)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", img.ContentType)
	assert.Equal(t, []byte("%PDF"), img.Data)

	_, err = service.GetImage(context.Background(), testUserID, 2)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = service.GetImage(context.Background(), testUserID, 3)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestW2Service_ImagesDisabled(t *testing.T) {
	service := services.NewW2Service(nil, nil, nil, nil)
	_, err := service.UploadImage(context.Background(), params.UploadW2ImageParams{Data: []byte("x"), ContentType: "image/png"})
	assert.ErrorIs(t, err, services.ErrImageStoreDisabled)
	_, err = service.GetImage(context.Background(), testUserID, 1)
	assert.ErrorIs(t, err, services.ErrImageStoreDisabled)
}

func TestImageKey(t *testing.T) {
	data := []byte("scan")
	key := services.ImageKey(data, "image/jpeg")

	assert.Equal(t, key, services.ImageKey(data, "image/jpeg"))
	assert.NotEqual(t, key, services.ImageKey([]byte("other scan"), "image/jpeg"))
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-3[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\.jpeg$`, key)
	assert.Equal(t, ".pdf", path.Ext(services.ImageKey(data, "application/pdf")))
}
