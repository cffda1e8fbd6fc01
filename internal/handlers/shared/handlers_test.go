package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"varsha-travels/internal/models"
	"varsha-travels/internal/services"
	"varsha-travels/internal/utils"
	"varsha-travels/internal/validators"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockDestinationService is a mock implementation of ResourceService for destinations
type MockDestinationService struct {
	mock.Mock
}

func (m *MockDestinationService) Name() string { return models.CollectionDestinations }

func (m *MockDestinationService) List(ctx context.Context) ([]*models.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Destination), args.Error(1)
}

func (m *MockDestinationService) Get(ctx context.Context, id string) (*models.Destination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *MockDestinationService) Create(ctx context.Context, in *models.DestinationInput) (*models.Destination, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *MockDestinationService) Update(ctx context.Context, id string, in *models.DestinationPatch) (*models.Destination, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Destination), args.Error(1)
}

func (m *MockDestinationService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, request *services.LoginRequest) (*services.LoginResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LoginResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*utils.AdminClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*utils.AdminClaims), args.Error(1)
}

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, src io.Reader, filename, declaredType string) (*services.UploadResult, error) {
	args := m.Called(ctx, src, filename, declaredType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UploadResult), args.Error(1)
}

type MockContactSettingsService struct {
	mock.Mock
}

func (m *MockContactSettingsService) Current(ctx context.Context) (*models.ContactSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactSettings), args.Error(1)
}

func (m *MockContactSettingsService) Update(ctx context.Context, id string, in *models.ContactSettingsPatch) (*models.ContactSettings, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactSettings), args.Error(1)
}

func newContext(method, target string, body io.Reader, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, body)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func destinationHandler(svc *MockDestinationService) *ResourceHandler[*models.Destination, models.DestinationInput, models.DestinationPatch] {
	return NewResourceHandler[*models.Destination, models.DestinationInput, models.DestinationPatch](svc, DestinationMessages, nil)
}

func TestResourceHandler_List(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	c, w := newContext(http.MethodGet, "/api/destinations", nil)

	docs := []*models.Destination{{Name: "Ooty"}, {Name: "Kodaikanal"}}
	svc.On("List", mock.Anything).Return(docs, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.Destination
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Ooty", got[0].Name)
	svc.AssertExpectations(t)
}

func TestResourceHandler_ListFailure(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	c, w := newContext(http.MethodGet, "/api/destinations", nil)

	svc.On("List", mock.Anything).Return(nil, errors.New("connection reset"))

	handler.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch destinations", decodeMessage(t, w))
}

func TestResourceHandler_Create(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	body := jsonBody(t, map[string]interface{}{
		"name":       "Ooty ",
		"state":      " Tamil Nadu",
		"highlights": []string{"Toy Train", "", "  Lake "},
	})
	c, w := newContext(http.MethodPost, "/api/destinations", body)

	created := &models.Destination{
		Base:       models.Base{ID: primitive.NewObjectID(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:       "Ooty",
		State:      "Tamil Nadu",
		Highlights: []string{"Toy Train", "Lake"},
	}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in *models.DestinationInput) bool {
		return in.Name == "Ooty " && len(in.Highlights) == 3
	})).Return(created, nil)

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Ooty", got["name"])
	assert.Equal(t, created.ID.Hex(), got["_id"])
	assert.Equal(t, "", got["imagePublicId"])
	svc.AssertExpectations(t)
}

func TestResourceHandler_CreateValidationError(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	c, w := newContext(http.MethodPost, "/api/destinations", jsonBody(t, map[string]string{"name": " "}))

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, validators.NewValidationError("name", "Name and state are required"))

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and state are required", decodeMessage(t, w))
}

func TestResourceHandler_CreateMalformedBody(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	c, w := newContext(http.MethodPost, "/api/destinations", bytes.NewBufferString(`{"name": 42`))

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, utils.MsgInvalidRequestBody, decodeMessage(t, w))
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResourceHandler_GetNotFound(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	c, w := newContext(http.MethodGet, "/api/destinations/nope", nil, gin.Param{Key: "id", Value: "nope"})

	svc.On("Get", mock.Anything, "nope").Return(nil, services.ErrNotFound)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Destination not found", decodeMessage(t, w))
}

func TestResourceHandler_UpdatePassesPartialBody(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	id := primitive.NewObjectID().Hex()
	c, w := newContext(http.MethodPut, "/api/destinations/"+id,
		jsonBody(t, map[string]string{"details": "Queen of hills"}),
		gin.Param{Key: "id", Value: id})

	updated := &models.Destination{Name: "Ooty", State: "Tamil Nadu", Details: "Queen of hills"}
	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(p *models.DestinationPatch) bool {
		return p.Details.Present() && !p.Name.Present() && !p.ImagePublicID.Present()
	})).Return(updated, nil)

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestResourceHandler_UpdateTypeMismatch(t *testing.T) {
	svc := &MockDestinationService{}
	handler := destinationHandler(svc)
	c, w := newContext(http.MethodPut, "/api/destinations/x",
		bytes.NewBufferString(`{"name": ["not", "a", "string"]}`),
		gin.Param{Key: "id", Value: "x"})

	handler.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestResourceHandler_UpdateNotSupported(t *testing.T) {
	svc := &MockDestinationService{}
	handler := NewResourceHandler[*models.Destination, models.DestinationInput, models.DestinationPatch](svc, ReviewMessages, nil)
	c, w := newContext(http.MethodPut, "/api/reviews/x", jsonBody(t, map[string]string{}), gin.Param{Key: "id", Value: "x"})

	svc.On("Update", mock.Anything, "x", mock.Anything).Return(nil, services.ErrUpdateNotSupported)

	handler.Update(c)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestResourceHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"deleted", nil, http.StatusOK, "Destination deleted"},
		{"unknown id", services.ErrNotFound, http.StatusNotFound, "Destination not found"},
		{"database down", errors.New("timeout"), http.StatusInternalServerError, "Failed to delete destination"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockDestinationService{}
			handler := destinationHandler(svc)
			c, w := newContext(http.MethodDelete, "/api/destinations/abc", nil, gin.Param{Key: "id", Value: "abc"})

			svc.On("Delete", mock.Anything, "abc").Return(tt.err)

			handler.Delete(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}
}

func TestContactSettingsHandler(t *testing.T) {
	t.Run("get bootstraps defaults", func(t *testing.T) {
		svc := &MockContactSettingsService{}
		handler := NewContactSettingsHandler(svc, nil)
		c, w := newContext(http.MethodGet, "/api/contact-settings", nil)

		svc.On("Current", mock.Anything).Return(models.DefaultContactSettings(), nil)

		handler.Get(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got models.ContactSettings
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Varsha Travels", got.BusinessName)
	})

	t.Run("update unknown id", func(t *testing.T) {
		svc := &MockContactSettingsService{}
		handler := NewContactSettingsHandler(svc, nil)
		c, w := newContext(http.MethodPut, "/api/contact-settings/abc",
			jsonBody(t, map[string]string{"businessName": "VT"}),
			gin.Param{Key: "id", Value: "abc"})

		svc.On("Update", mock.Anything, "abc", mock.Anything).Return(nil, services.ErrNotFound)

		handler.Update(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Contact settings not found", decodeMessage(t, w))
	})

	t.Run("get failure", func(t *testing.T) {
		svc := &MockContactSettingsService{}
		handler := NewContactSettingsHandler(svc, nil)
		c, w := newContext(http.MethodGet, "/api/contact-settings", nil)

		svc.On("Current", mock.Anything).Return(nil, errors.New("no primary"))

		handler.Get(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to fetch contact settings", decodeMessage(t, w))
	})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"missing email", validators.NewValidationError("email", utils.MsgEmailRequired), http.StatusBadRequest, utils.MsgEmailRequired},
		{"not configured", services.ErrAdminNotConfigured, http.StatusInternalServerError, utils.MsgAdminNotConfigured},
		{"mismatch", services.ErrInvalidCredentials, http.StatusUnauthorized, utils.MsgInvalidCredentials},
		{"unexpected", errors.New("signing failed"), http.StatusInternalServerError, utils.MsgLoginFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{}
			handler := NewAuthHandler(svc, nil)
			c, w := newContext(http.MethodPost, "/api/admin/login",
				jsonBody(t, services.LoginRequest{Email: "a@b.c", Password: "x"}))

			svc.On("Login", mock.Anything, mock.Anything).Return(nil, tt.err)

			handler.Login(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, w))
		})
	}

	t.Run("success", func(t *testing.T) {
		svc := &MockAuthService{}
		handler := NewAuthHandler(svc, nil)
		c, w := newContext(http.MethodPost, "/api/admin/login",
			jsonBody(t, services.LoginRequest{Email: " Admin@Varsha.in ", Password: "secret"}))

		svc.On("Login", mock.Anything, &services.LoginRequest{Email: " Admin@Varsha.in ", Password: "secret"}).
			Return(&services.LoginResponse{Message: utils.MsgLoginSuccessful, Email: "admin@varsha.in", Token: "t", TokenType: "Bearer"}, nil)

		handler.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got services.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "admin@varsha.in", got.Email)
		assert.Equal(t, "t", got.Token)
		svc.AssertExpectations(t)
	})
}

func multipartImage(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func uploadContext(body io.Reader, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	c, w := newContext(http.MethodPost, "/api/upload", body)
	c.Request.Header.Set("Content-Type", contentType)
	return c, w
}

func TestUploadHandler(t *testing.T) {
	t.Run("uploads image", func(t *testing.T) {
		uploader := &MockUploader{}
		handler := NewUploadHandler(uploader, 1024, nil)
		body, ct := multipartImage(t, "image", "ooty.png", "image/png", []byte("png-bytes"))
		c, w := uploadContext(body, ct)

		uploader.On("Upload", mock.Anything, mock.Anything, "ooty.png", "image/png").
			Return(&services.UploadResult{Message: utils.MsgImageUploaded, SecureURL: "https://cdn/x.png", PublicID: "varsha_travels/x"}, nil)

		handler.Upload(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		var got services.UploadResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "varsha_travels/x", got.PublicID)
		assert.Equal(t, "https://cdn/x.png", got.SecureURL)
		uploader.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		uploader := &MockUploader{}
		handler := NewUploadHandler(uploader, 1024, nil)
		body, ct := multipartImage(t, "photo", "ooty.png", "image/png", []byte("png-bytes"))
		c, w := uploadContext(body, ct)

		handler.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.MsgNoImage, decodeMessage(t, w))
	})

	t.Run("not an image", func(t *testing.T) {
		uploader := &MockUploader{}
		handler := NewUploadHandler(uploader, 1024, nil)
		body, ct := multipartImage(t, "image", "notes.txt", "text/plain", []byte("hello"))
		c, w := uploadContext(body, ct)

		handler.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.MsgOnlyImages, decodeMessage(t, w))
	})

	t.Run("too large", func(t *testing.T) {
		uploader := &MockUploader{}
		handler := NewUploadHandler(uploader, 8, nil)
		body, ct := multipartImage(t, "image", "big.jpg", "image/jpeg", bytes.Repeat([]byte("x"), 64))
		c, w := uploadContext(body, ct)

		handler.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.MsgImageTooLarge, decodeMessage(t, w))
		uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		uploader := &MockUploader{}
		handler := NewUploadHandler(uploader, 1024, nil)
		body, ct := multipartImage(t, "image", "ooty.png", "image/png", []byte("png-bytes"))
		c, w := uploadContext(body, ct)

		uploader.On("Upload", mock.Anything, mock.Anything, "ooty.png", "image/png").
			Return(nil, errors.New("cloudinary: 502"))

		handler.Upload(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, utils.MsgUploadFailed, decodeMessage(t, w))
	})
}

func TestHealth(t *testing.T) {
	c, w := newContext(http.MethodGet, "/health", nil)

	Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, utils.MsgHealthy, got.Message)
}

func TestReadinessHandler(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("all dependencies up", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/api/health/ready", nil)

		NewReadinessHandler(map[string]Pinger{"mongodb": up, "redis": up}, time.Second, nil).Ready(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var got ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "ok", got.Status)
		assert.Equal(t, map[string]string{"mongodb": "ok", "redis": "ok"}, got.Checks)
	})

	t.Run("one dependency down", func(t *testing.T) {
		c, w := newContext(http.MethodGet, "/api/health/ready", nil)

		NewReadinessHandler(map[string]Pinger{"mongodb": up, "kafka": down}, time.Second, nil).Ready(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var got ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "unavailable", got.Status)
		assert.Equal(t, "down", got.Checks["kafka"])
		assert.Equal(t, "ok", got.Checks["mongodb"])
	})
}
