package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/eduface/eduface/internal/pkg/apperrors"
)

func responseFor(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/boom", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"usn exists", apperrors.ErrUSNAlreadyExists, http.StatusConflict},
		{"invalid date", apperrors.ErrInvalidDate, http.StatusBadRequest},
		{"invalid status", apperrors.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid action", apperrors.ErrInvalidAction, http.StatusBadRequest},
		{"validation wrapper", apperrors.NewValidationError("name is required"), http.StatusBadRequest},
		{"door relay", apperrors.ErrDoorRelayFailed, http.StatusInternalServerError},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := responseFor(t, tc.err)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
				Error   struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("unmarshal body: %v", err)
			}
			if body.Success {
				t.Error("success = true on error response")
			}
			if body.Message == "" || body.Error.Code == "" {
				t.Errorf("incomplete error envelope: %s", w.Body.String())
			}
		})
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	w := responseFor(t, errors.New("pq: connection refused on 10.0.0.5"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if body == "" || strings.Contains(body, "10.0.0.5") || strings.Contains(body, "pq:") {
		t.Errorf("internal details leaked: %s", body)
	}
}
