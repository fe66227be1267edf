package impl

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	archiveAccessDenied = "Access Denied. You must be a logged-in subscriber to view the archive."
	archiveLoadFailed   = "Failed to load the newsletter archive."
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	notifier       service.Notifier
	logger         *slog.Logger

	loading inFlight

	mu          sync.RWMutex
	newsletters []entity.Newsletter
	errMessage  string
}

// NewsletterServiceParams holds dependencies for NewsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
	Notifier       service.Notifier
	Logger         *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

// Subscribe adds email to the mailing list. Being subscribed already counts as success.
func (srv *newsletterService) Subscribe(ctx context.Context, email string) bool {
	ctx, logger := startAction(ctx, srv.logger)

	email, err := normalizeEmail(email)
	if err != nil {
		logger.Info("Subscription rejected before sending", slog.Any("error", err))
		srv.notifier.Error("Please enter a valid email address.")

		return false
	}

	done := srv.loading.begin()
	defer done()

	err = srv.newsletterRepo.Subscribe(ctx, entity.SubscribeInput{Email: email})
	switch {
	case err == nil:
		srv.notifier.Success("Subscription successful!", "You're now on the list.")

		return true
	case domainerrors.HasStatus(err, http.StatusConflict):
		srv.notifier.Info("You are already subscribed!")

		return true
	default:
		logger.Error("Newsletter subscription failed", slog.Any("error", err))
		srv.notifier.Error("Subscription failed", "An unexpected error occurred. Please try again.")

		return false
	}
}

// FetchArchive loads past issues. Failures keep the held issues and set ErrorMessage.
func (srv *newsletterService) FetchArchive(ctx context.Context) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	srv.setErrorMessage("")

	newsletters, err := srv.newsletterRepo.Archive(ctx)
	if err != nil {
		logger.Error("Failed to fetch newsletter archive", slog.Any("error", err))
		if domainerrors.HasStatus(err, http.StatusForbidden) {
			srv.setErrorMessage(archiveAccessDenied)
		} else {
			srv.setErrorMessage(archiveLoadFailed)
		}

		return false
	}

	srv.mu.Lock()
	srv.newsletters = newsletters
	srv.mu.Unlock()

	return true
}

func (srv *newsletterService) Newsletters() []entity.Newsletter {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.newsletters)
}

func (srv *newsletterService) Latest() *entity.Newsletter {
	return latestIssue(srv.Newsletters())
}

func (srv *newsletterService) Older() []entity.Newsletter {
	return olderIssues(srv.Newsletters())
}

func (srv *newsletterService) ErrorMessage() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.errMessage
}

func (srv *newsletterService) IsLoading() bool {
	return srv.loading.active()
}

func (srv *newsletterService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.newsletters = nil
	srv.errMessage = ""
}

func (srv *newsletterService) setErrorMessage(msg string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.errMessage = msg
}

// normalizeEmail trims email and rejects it when nothing is left.
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errors.WithStack(domainerrors.ErrEmptyEmail)
	}

	return email, nil
}

// latestIssue returns the first issue of a newest-first archive.
func latestIssue(issues []entity.Newsletter) *entity.Newsletter {
	if len(issues) == 0 {
		return nil
	}

	return &issues[0]
}

func olderIssues(issues []entity.Newsletter) []entity.Newsletter {
	if len(issues) <= 1 {
		return []entity.Newsletter{}
	}

	return issues[1:]
}
