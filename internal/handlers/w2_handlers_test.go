package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taxdesk/tax-service/internal/constants"
	"github.com/taxdesk/tax-service/internal/handlers"
	"github.com/taxdesk/tax-service/internal/mocks"
	"github.com/taxdesk/tax-service/internal/services"
	"github.com/taxdesk/tax-service/internal/taxcalc"
	"github.com/taxdesk/tax-service/internal/types/params"
	"github.com/taxdesk/tax-service/internal/types/responses"
	"go.uber.org/mock/gomock"
)

func w2Router(svc *mocks.MockW2Service) *gin.Engine {
	h := handlers.NewW2Handler(svc)
	return newRouter(func(r gin.IRouter) {
		r.POST("/w2s", h.CreateW2)
		r.GET("/w2s", h.ListW2s)
		r.GET("/w2s/return/:tax_return_id", h.ListW2sByTaxReturn)
		r.PUT("/w2s/return/:tax_return_id", h.ReplaceW2s)
		r.GET("/w2s/:id", h.GetW2)
		r.PUT("/w2s/:id", h.UpdateW2)
		r.DELETE("/w2s/:id", h.DeleteW2)
		r.POST("/w2s/:id/image", h.UploadImage)
		r.GET("/w2s/:id/image", h.GetImage)
	})
}

const w2Body = `{"employerName":"Acme","ein":"12-3456789","wagesAndTips":"50000","federalIncomeTaxWithheld":"6000","stateIncomeTaxWithheld":"2000"}`

func TestW2Handler_CreateW2(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		setupMock  func(m *mocks.MockW2Service)
		wantStatus int
	}{
		{
			name: "created",
			path: "/w2s?taxReturnId=100",
			body: w2Body,
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().CreateW2(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in params.W2Params) (*taxcalc.W2, error) {
						assert.Equal(t, int64(0), in.ID)
						assert.Equal(t, testUserID, in.UserID)
						assert.Equal(t, testTaxReturnID, in.TaxReturnID)
						assert.Equal(t, "Acme", in.EmployerName)
						assert.True(t, d("50000").Equal(in.WagesAndTips))
						w2 := sampleW2(1)
						return &w2, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing tax return",
			path:       "/w2s",
			body:       w2Body,
			setupMock:  func(m *mocks.MockW2Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad ein",
			path:       "/w2s?taxReturnId=100",
			body:       `{"employerName":"Acme","ein":"123"}`,
			setupMock:  func(m *mocks.MockW2Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "return of another user",
			path: "/w2s?taxReturnId=100",
			body: w2Body,
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().CreateW2(gomock.Any(), gomock.Any()).Return(nil, forbidden())
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockW2Service(ctrl)
			tt.setupMock(svc)

			w := serve(w2Router(svc), http.MethodPost, tt.path, jsonBody(tt.body), testUserID)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusCreated {
				var got responses.W2Response
				decode(t, w, &got)
				assert.Equal(t, "50000.00", got.WagesAndTips)
				assert.False(t, got.HasImage)
			}
		})
	}
}

func TestW2Handler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockW2Service(ctrl)
	router := w2Router(svc)

	year := 2023
	svc.EXPECT().ListW2s(gomock.Any(), params.ListW2sParams{UserID: testUserID, Year: &year}).
		Return([]taxcalc.W2{sampleW2(1), sampleW2(2)}, nil)
	w := serve(router, http.MethodGet, "/w2s?year=2023", nil, testUserID)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []responses.W2Response `json:"data"`
	}
	decode(t, w, &list)
	assert.Len(t, list.Data, 2)

	svc.EXPECT().ListW2sByTaxReturn(gomock.Any(), testUserID, testTaxReturnID).Return(nil, notFound(constants.TaxReturnNotFound))
	w = serve(router, http.MethodGet, "/w2s/return/100", nil, testUserID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestW2Handler_ReplaceW2s(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.MockW2Service)
		wantStatus int
		wantCount  int
	}{
		{
			name: "update one and create one",
			body: `{"w2s":[{"id":1,"employerName":"Acme","wagesAndTips":"50000"},{"employerName":"Globex","wagesAndTips":"1000"}]}`,
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().ReplaceW2s(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in params.ReplaceW2sParams) ([]taxcalc.W2, error) {
						require.Len(t, in.W2s, 2)
						assert.Equal(t, int64(1), in.W2s[0].ID)
						assert.Equal(t, int64(0), in.W2s[1].ID)
						assert.Equal(t, testTaxReturnID, in.W2s[1].TaxReturnID)
						return []taxcalc.W2{sampleW2(1), sampleW2(3)}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name: "empty list removes everything",
			body: `{"w2s":[]}`,
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().ReplaceW2s(gomock.Any(), params.ReplaceW2sParams{
					UserID:      testUserID,
					TaxReturnID: testTaxReturnID,
					W2s:         []params.W2Params{},
				}).Return([]taxcalc.W2{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid entry",
			body:       `{"w2s":[{"employerName":"Acme","wagesAndTips":-1}]}`,
			setupMock:  func(m *mocks.MockW2Service) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "W2 from another return",
			body: `{"w2s":[{"id":55,"employerName":"Acme"}]}`,
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().ReplaceW2s(gomock.Any(), gomock.Any()).Return(nil, notFound(constants.W2NotFound))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockW2Service(ctrl)
			tt.setupMock(svc)

			w := serve(w2Router(svc), http.MethodPut, "/w2s/return/100", jsonBody(tt.body), testUserID)
			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				var list struct {
					Data []responses.W2Response `json:"data"`
				}
				decode(t, w, &list)
				assert.Len(t, list.Data, tt.wantCount)
			}
		})
	}
}

func TestW2Handler_GetUpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockW2Service(ctrl)
	router := w2Router(svc)

	w2 := sampleW2(5)
	w2.ImageKey = "abc.png"
	svc.EXPECT().GetW2(gomock.Any(), testUserID, int64(5)).Return(&w2, nil)
	w := serve(router, http.MethodGet, "/w2s/5", nil, testUserID)
	require.Equal(t, http.StatusOK, w.Code)
	var got responses.W2Response
	decode(t, w, &got)
	assert.True(t, got.HasImage)
	assert.NotContains(t, w.Body.String(), "abc.png")

	svc.EXPECT().UpdateW2(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in params.W2Params) (*taxcalc.W2, error) {
			assert.Equal(t, int64(5), in.ID)
			return &w2, nil
		})
	w = serve(router, http.MethodPut, "/w2s/5", jsonBody(w2Body), testUserID)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	svc.EXPECT().DeleteW2(gomock.Any(), testUserID, int64(5)).Return(nil)
	w = serve(router, http.MethodDelete, "/w2s/5", nil, testUserID)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, http.MethodDelete, "/w2s/0", nil, testUserID)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartImage(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="w2.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestW2Handler_UploadImage(t *testing.T) {
	tests := []struct {
		name       string
		contentTyp string
		setupMock  func(m *mocks.MockW2Service)
		wantStatus int
	}{
		{
			name:       "stored",
			contentTyp: "image/png",
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().UploadImage(gomock.Any(), params.UploadW2ImageParams{
					UserID:      testUserID,
					W2ID:        5,
					ContentType: "image/png",
					Data:        []byte("png bytes"),
				}).DoAndReturn(func(_ context.Context, in params.UploadW2ImageParams) (*taxcalc.W2, error) {
					w2 := sampleW2(5)
					w2.ImageKey = services.ImageKey(in.Data, in.ContentType)
					return &w2, nil
				})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not an image",
			contentTyp: "text/plain",
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(nil, invalid(constants.InvalidImage))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage not configured",
			contentTyp: "image/png",
			setupMock: func(m *mocks.MockW2Service) {
				m.EXPECT().UploadImage(gomock.Any(), gomock.Any()).Return(nil, services.ErrImageStoreDisabled)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockW2Service(ctrl)
			tt.setupMock(svc)

			body, contentType := multipartImage(t, tt.contentTyp, []byte("png bytes"))
			req := httptest.NewRequest(http.MethodPost, "/w2s/5/image", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set(constants.UserIDHeader, strconv.FormatInt(testUserID, 10))
			w := httptest.NewRecorder()
			w2Router(svc).ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"hasImage":true`)
			}
		})
	}
}

func TestW2Handler_UploadImage_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockW2Service(ctrl)

	w := serve(w2Router(svc), http.MethodPost, "/w2s/5/image", jsonBody(`{}`), testUserID)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, constants.InvalidImage, body.Error)
}

func TestW2Handler_GetImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockW2Service(ctrl)
	router := w2Router(svc)

	svc.EXPECT().GetImage(gomock.Any(), testUserID, int64(5)).Return(&params.W2Image{
		Key:         "0f4c.png",
		ContentType: "image/png",
		Data:        []byte("png bytes"),
	}, nil)
	w := serve(router, http.MethodGet, "/w2s/5/image", nil, testUserID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, `"0f4c.png"`, w.Header().Get("ETag"))
	assert.Equal(t, "png bytes", w.Body.String())

	svc.EXPECT().GetImage(gomock.Any(), testUserID, int64(6)).Return(nil, notFound(constants.ImageNotFound))
	w = serve(router, http.MethodGet, "/w2s/6/image", nil, testUserID)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
