package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"
)

// PathPlaceholder is replaced with the image path in every template token
const PathPlaceholder = "{path}"

// CommandExecutor runs the configured wallpaper command
type CommandExecutor struct {
	logger *zap.Logger
}

// NewExecutor creates a new command executor
func NewExecutor(logger *zap.Logger) *CommandExecutor {
	return &CommandExecutor{logger: logger}
}

// SplitTemplate tokenises template shell-style and substitutes the image
// path. Splitting happens before substitution, so a path containing spaces
// stays a single argument. Quotes group words; no other shell feature
// (pipes, globbing, variables) is interpreted.
func SplitTemplate(template, imagePath string) ([]string, error) {
	words, err := shellquote.Split(template)
	if err != nil {
		return nil, fmt.Errorf("invalid command template %q: %w", template, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("command template is empty")
	}
	for i, w := range words {
		words[i] = strings.ReplaceAll(w, PathPlaceholder, imagePath)
	}
	return words, nil
}

// Apply runs template with {path} substituted by imagePath. Stderr is
// captured and returned; a launch failure or non-zero exit yields an
// ApplyCommandFailed error.
func (e *CommandExecutor) Apply(ctx context.Context, template, imagePath string) (domain.ApplyResult, error) {
	args, err := SplitTemplate(template, imagePath)
	if err != nil {
		return domain.ApplyResult{ExitCode: -1}, &domain.Error{
			Kind:    domain.KindApplyCommandFailed,
			Message: "Failed to assign wallpaper",
			Cause:   err,
		}
	}

	e.logger.Debug("Setting wallpaper",
		zap.String("command", args[0]),
		zap.Strings("args", args[1:]),
		zap.String("path", imagePath))

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result := domain.ApplyResult{ExitCode: -1, Stderr: stderr.String()}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr != nil {
		msg := "Failed to assign wallpaper"
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) && strings.TrimSpace(result.Stderr) != "" {
			msg += ": " + strings.TrimSpace(result.Stderr)
		}
		return result, &domain.Error{
			Kind:    domain.KindApplyCommandFailed,
			Subject: args[0],
			Message: msg,
			Cause:   runErr,
		}
	}

	e.logger.Info("Wallpaper set successfully",
		zap.String("command", args[0]),
		zap.String("path", imagePath))
	return result, nil
}

// Suggest returns a template for the wallpaper tool detected on this system
func (e *CommandExecutor) Suggest() string {
	cmd := detectCommand(e.logger)
	return cmd.Template
}
