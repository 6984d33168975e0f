package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/smartwaste360/gateway/internal/pkg/models"
	"github.com/smartwaste360/gateway/services/session/mocks"
)

func TestSessionHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(uc *mocks.MockSessionUC)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: `{"email":"collector@smartwaste.io","password":"secret","role":"collector"}`,
			setupMock: func(uc *mocks.MockSessionUC) {
				uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad credentials",
			body: `{"email":"collector@smartwaste.io","password":"wrong","role":"collector"}`,
			setupMock: func(uc *mocks.MockSessionUC) {
				uc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(errors.New("Bad email or password"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing credentials",
			body:           `{"email":"","password":""}`,
			setupMock:      func(uc *mocks.MockSessionUC) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{not-json`,
			setupMock:      func(uc *mocks.MockSessionUC) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockSessionUC(ctrl)
			tt.setupMock(mockUC)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewSessionHandler(mockUC)
			err := h.Login(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockSessionUC(ctrl)
	mockUC.EXPECT().Logout(gomock.Any()).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewSessionHandler(mockUC)
	assert.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionHandler_Status(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockSessionUC(ctrl)
		mockUC.EXPECT().Role(gomock.Any()).Return(models.RoleCitizen, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewSessionHandler(mockUC)
		assert.NoError(t, h.Status(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active":true`)
		assert.Contains(t, rec.Body.String(), "citizen")
	})

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockSessionUC(ctrl)
		mockUC.EXPECT().Role(gomock.Any()).Return(models.Role(""), errors.New("no active session"))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/session", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		h := NewSessionHandler(mockUC)
		assert.NoError(t, h.Status(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active":false`)
	})
}
