// Package notify implements the user-facing notifier.
package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// Toaster records notifications in memory, logs them, and forwards each
// one to an optional sink (the CLI prints them).
type Toaster struct {
	logger *slog.Logger
	sink   func(service.Toast)

	mu      sync.Mutex
	active  []service.Toast
	history []service.Toast
}

// NewToaster creates a toaster that only logs.
func NewToaster(logger *slog.Logger) *Toaster {
	return &Toaster{logger: logger}
}

// SetSink routes every new toast to sink.
func (t *Toaster) SetSink(sink func(service.Toast)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sink = sink
}

func (t *Toaster) Success(title string, description ...string) {
	t.push(service.ToastSuccess, title, description)
}

func (t *Toaster) Error(title string, description ...string) {
	t.push(service.ToastError, title, description)
}

func (t *Toaster) Info(title string, description ...string) {
	t.push(service.ToastInfo, title, description)
}

func (t *Toaster) Loading(title string) string {
	return t.push(service.ToastLoading, title, nil)
}

func (t *Toaster) Dismiss(ids ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(ids) == 0 {
		t.active = nil

		return
	}

	t.active = slices.DeleteFunc(t.active, func(toast service.Toast) bool {
		return slices.Contains(ids, toast.ID)
	})
}

// Active returns the toasts currently shown.
func (t *Toaster) Active() []service.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.active)
}

// History returns every toast ever shown, oldest first.
func (t *Toaster) History() []service.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	return slices.Clone(t.history)
}

// Count returns how many toasts of the given level were shown.
func (t *Toaster) Count(level service.ToastLevel) int {
	n := 0
	for _, toast := range t.History() {
		if toast.Level == level {
			n++
		}
	}

	return n
}

// Last returns the most recent toast.
func (t *Toaster) Last() (service.Toast, bool) {
	history := t.History()
	if len(history) == 0 {
		return service.Toast{}, false
	}

	return history[len(history)-1], true
}

// Reset forgets all toasts.
func (t *Toaster) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.active = nil
	t.history = nil
}

func (t *Toaster) push(level service.ToastLevel, title string, description []string) string {
	toast := service.Toast{
		ID:    uuid.New().String(),
		Level: level,
		Title: title,
	}
	if len(description) > 0 {
		toast.Description = description[0]
	}

	t.mu.Lock()
	t.active = append(t.active, toast)
	t.history = append(t.history, toast)
	sink := t.sink
	t.mu.Unlock()

	logLevel := slog.LevelInfo
	if level == service.ToastError {
		logLevel = slog.LevelWarn
	}
	t.logger.Log(context.Background(), logLevel, "Toast",
		slog.String("level", string(level)),
		slog.String("title", title),
		slog.String("description", toast.Description),
	)

	if sink != nil {
		sink(toast)
	}

	return toast.ID
}
