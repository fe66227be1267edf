package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterService_Subscribe(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
		level  service.ToastLevel
		title  string
	}{
		{name: "created", status: http.StatusCreated, want: true, level: service.ToastSuccess, title: "Subscription successful!"},
		{name: "already subscribed", status: http.StatusConflict, want: true, level: service.ToastInfo, title: "You are already subscribed!"},
		{name: "server error", status: http.StatusInternalServerError, want: false, level: service.ToastError, title: "Subscription failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := createTestStores(t)
			if tt.status < http.StatusBadRequest {
				stores.api.Reply(http.MethodPost, "/newsletter/subscribe", tt.status, nil)
			} else {
				stores.api.Fail(http.MethodPost, "/newsletter/subscribe", tt.status, "nope")
			}

			got := stores.newsletter.Subscribe(context.Background(), "rider@example.com")

			assert.Equal(t, tt.want, got)
			require.Len(t, stores.toasts.History(), 1)
			toast := lastToast(t, stores.toasts)
			assert.Equal(t, tt.level, toast.Level)
			assert.Equal(t, tt.title, toast.Title)

			var sent entity.SubscribeInput
			stores.api.CallsTo(http.MethodPost, "/newsletter/subscribe")[0].DecodeBody(t, &sent)
			assert.Equal(t, "rider@example.com", sent.Email)
		})
	}
}

func TestNewsletterService_SubscribeRejectsEmptyEmail(t *testing.T) {
	stores := createTestStores(t)

	assert.False(t, stores.newsletter.Subscribe(context.Background(), "  "))
	assert.Empty(t, stores.api.Calls())
	assert.Equal(t, "Please enter a valid email address.", lastToast(t, stores.toasts).Title)
}

func TestNormalizeEmail(t *testing.T) {
	email, err := normalizeEmail("  rider@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "rider@example.com", email)

	_, err = normalizeEmail(" \t ")
	assert.True(t, errors.Is(err, domainerrors.ErrEmptyEmail))
}

func TestNewsletterService_SubscribeRaisesLoading(t *testing.T) {
	stores := createTestStores(t)

	started := make(chan struct{})
	release := make(chan struct{})
	stores.api.Handle(http.MethodPost, "/newsletter/subscribe", func(c echo.Context) error {
		close(started)
		<-release

		return c.NoContent(http.StatusCreated)
	})

	result := make(chan bool, 1)
	go func() {
		result <- stores.newsletter.Subscribe(context.Background(), "rider@example.com")
	}()

	<-started
	assert.True(t, stores.newsletter.IsLoading())
	close(release)

	assert.True(t, <-result)
	assert.False(t, stores.newsletter.IsLoading())
}

func TestNewsletterService_FetchArchive(t *testing.T) {
	issues := []entity.Newsletter{
		{ID: 3, Subject: "Winter swell", PublishedAt: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Subject: "Autumn", PublishedAt: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 1, Subject: "Launch", PublishedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	stores := createTestStores(t)
	stores.api.Reply(http.MethodGet, "/newsletter/archive", http.StatusOK, issues)

	require.True(t, stores.newsletter.FetchArchive(context.Background()))

	require.NotNil(t, stores.newsletter.Latest())
	assert.Equal(t, int64(3), stores.newsletter.Latest().ID)
	assert.Len(t, stores.newsletter.Older(), 2)
	assert.Empty(t, stores.newsletter.ErrorMessage())
	assert.False(t, stores.newsletter.IsLoading())
}

func TestNewsletterService_FetchArchiveFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   string
	}{
		{name: "forbidden", status: http.StatusForbidden, want: "Access Denied. You must be a logged-in subscriber to view the archive."},
		{name: "unauthorized", status: http.StatusUnauthorized, want: "Failed to load the newsletter archive."},
		{name: "server error", status: http.StatusInternalServerError, want: "Failed to load the newsletter archive."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := createTestStores(t)
			stores.api.Fail(http.MethodGet, "/newsletter/archive", tt.status, "denied")

			assert.False(t, stores.newsletter.FetchArchive(context.Background()))
			assert.Empty(t, stores.newsletter.Newsletters())
			assert.Nil(t, stores.newsletter.Latest())
			assert.Equal(t, tt.want, stores.newsletter.ErrorMessage())
			assert.False(t, stores.newsletter.IsLoading())
		})
	}
}

func TestNewsletterService_FetchArchiveClearsPreviousError(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Fail(http.MethodGet, "/newsletter/archive", http.StatusForbidden, "denied")
	stores.newsletter.FetchArchive(context.Background())

	stores.api.Reply(http.MethodGet, "/newsletter/archive", http.StatusOK, []entity.Newsletter{{ID: 1}})

	assert.True(t, stores.newsletter.FetchArchive(context.Background()))
	assert.Empty(t, stores.newsletter.ErrorMessage())
}

func TestNewsletterDerivations(t *testing.T) {
	assert.Nil(t, latestIssue(nil))
	assert.Empty(t, olderIssues(nil))
	assert.Empty(t, olderIssues([]entity.Newsletter{{ID: 1}}))
	assert.Equal(t, []entity.Newsletter{{ID: 1}}, olderIssues([]entity.Newsletter{{ID: 2}, {ID: 1}}))
}
