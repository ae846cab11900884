package door

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/eduface/eduface/internal/pkg/logger"
)

// ScriptActuator drives the door by invoking an external executable with the
// action as its argument. The subprocess runs under an enforced timeout; a
// hung script must not stall the request forever.
type ScriptActuator struct {
	script  string
	timeout time.Duration
}

// NewScriptActuator creates an actuator for the given executable path.
func NewScriptActuator(script string, timeout time.Duration) *ScriptActuator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ScriptActuator{
		script:  script,
		timeout: timeout,
	}
}

// Trigger runs the script and waits for it to exit. A non-zero exit status is
// reported in the Result, not as an error; only timeout or failure to run the
// process at all is an error.
func (a *ScriptActuator) Trigger(ctx context.Context, action Action) (Result, error) {
	if !a.Valid(action) {
		return Result{}, fmt.Errorf("unsupported door action %q", action)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.script, string(action))
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if ctx.Err() != nil {
		logger.Error().Str("script", a.script).Str("action", string(action)).Dur("timeout", a.timeout).Msg("Door actuator timed out")
		return Result{}, fmt.Errorf("door actuator timed out after %s: %w", a.timeout, ctx.Err())
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return Result{}, fmt.Errorf("failed to run door actuator: %w", err)
		}
	}

	result := Result{
		Status:   statusFor(action),
		ExitCode: exitCode,
		Output:   output.String(),
	}

	logger.Info().Str("action", string(action)).Int("exitCode", exitCode).Msg("Door actuator finished")
	return result, nil
}

// Valid reports whether the actuator accepts the action.
func (a *ScriptActuator) Valid(action Action) bool {
	return action.Valid()
}

// statusFor maps the requested action to the reported status.
func statusFor(action Action) string {
	if action == ActionClose {
		return "closed"
	}
	return "opened"
}
