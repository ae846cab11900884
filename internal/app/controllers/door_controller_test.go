package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eduface/eduface/internal/app/services"
	"github.com/eduface/eduface/internal/pkg/door"
)

type stubActuator struct {
	result door.Result
	err    error
}

func (a *stubActuator) Trigger(_ context.Context, _ door.Action) (door.Result, error) {
	return a.result, a.err
}

func newDoorRouter(actuator door.Actuator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewDoorController(services.NewDoorService(actuator, zerolog.Nop()), zerolog.Nop())

	router := gin.New()
	router.POST("/api/door/open", ctrl.Open)
	return router
}

func TestDoorOpenWireContract(t *testing.T) {
	router := newDoorRouter(&stubActuator{
		result: door.Result{Status: "opened", ExitCode: 0, Output: "relay open ok\n"},
	})

	w := postJSON(router, "/api/door/open", `{"action": "open"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status string `json:"status"`
		Code   int    `json:"code"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "opened" {
		t.Errorf("status = %q, want opened", body.Status)
	}
	if body.Output != "relay open ok\n" {
		t.Errorf("output = %q", body.Output)
	}
}

func TestDoorOpenInvalidAction(t *testing.T) {
	router := newDoorRouter(&stubActuator{})

	w := postJSON(router, "/api/door/open", `{"action": "unlock"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", w.Code, w.Body.String())
	}
}

func TestDoorOpenRelayFailure(t *testing.T) {
	router := newDoorRouter(&stubActuator{err: errors.New("fork/exec: no such file")})

	w := postJSON(router, "/api/door/open", `{"action": "open"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500, body: %s", w.Code, w.Body.String())
	}
}
