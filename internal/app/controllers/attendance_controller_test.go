package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/models"
	"github.com/eduface/eduface/internal/app/services"
)

type memAttendanceRepo struct {
	rows   map[string]int64
	nextID int64
}

func (r *memAttendanceRepo) ListByDate(_ context.Context, date string) ([]*models.AttendanceRecord, error) {
	return []*models.AttendanceRecord{}, nil
}

func (r *memAttendanceRepo) Mark(_ context.Context, studentID int64, date string, status models.AttendanceStatus) (int64, bool, error) {
	key := fmt.Sprintf("%d|%s", studentID, date)
	if _, ok := r.rows[key]; ok {
		return 0, false, nil
	}
	id := r.nextID
	r.nextID++
	r.rows[key] = id
	return id, true, nil
}

func newAttendanceRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := &memAttendanceRepo{rows: map[string]int64{}, nextID: 1}
	ctrl := NewAttendanceController(services.NewAttendanceService(repo), zerolog.Nop())

	router := gin.New()
	router.GET("/api/attendance", ctrl.List)
	router.POST("/api/attendance", ctrl.Mark)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMarkAttendanceCreatesThenAcknowledges(t *testing.T) {
	router := newAttendanceRouter()
	body := `{"studentId": 7, "date": "2026-03-02", "status": "present"}`

	w := postJSON(router, "/api/attendance", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first mark: status = %d, want 201, body: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected row id in created response")
	}

	w = postJSON(router, "/api/attendance", body)
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate mark: status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	var ack struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ack); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ack.Message != "Already marked" {
		t.Errorf("message = %q, want Already marked", ack.Message)
	}
}

func TestMarkAttendanceRejectsSnakeCaseAlias(t *testing.T) {
	router := newAttendanceRouter()

	// student_id is not an accepted alias for studentId
	w := postJSON(router, "/api/attendance", `{"student_id": 7, "date": "2026-03-02", "status": "present"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
}

func TestMarkAttendanceValidatesPayload(t *testing.T) {
	router := newAttendanceRouter()

	cases := []string{
		`{"studentId": 7, "date": "03/02/2026", "status": "present"}`,
		`{"studentId": 7, "date": "2026-03-02", "status": "tardy"}`,
		`{"date": "2026-03-02", "status": "present"}`,
		`not json`,
	}
	for _, body := range cases {
		if w := postJSON(router, "/api/attendance", body); w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestListAttendanceReturnsEmptyArray(t *testing.T) {
	router := newAttendanceRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/attendance?date=2026-03-02", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %s, want []", body)
	}
}

func TestListAttendanceRejectsBadDate(t *testing.T) {
	router := newAttendanceRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/attendance?date=tomorrow", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
