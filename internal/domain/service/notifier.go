package service

// ToastLevel is the severity of a user-facing notification.
type ToastLevel string

const (
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
	ToastInfo    ToastLevel = "info"
	ToastLoading ToastLevel = "loading"
)

// Toast is one user-facing notification.
type Toast struct {
	ID          string     `json:"id"`
	Level       ToastLevel `json:"level"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
}

// Notifier surfaces one-line notifications to the user.
type Notifier interface {
	Success(title string, description ...string)
	Error(title string, description ...string)
	Info(title string, description ...string)

	// Loading shows a notification that stays until dismissed and returns its id.
	Loading(title string) string

	// Dismiss removes the given notifications, or all of them when no id is given.
	Dismiss(ids ...string)
}
