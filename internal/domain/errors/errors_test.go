package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_StatusSurvivesWrapping(t *testing.T) {
	err := errors.Wrap(NewAPIError(http.StatusConflict, "already subscribed", http.MethodPost, "/newsletter/subscribe"), "subscribe")

	assert.Equal(t, http.StatusConflict, StatusOf(err))
	assert.True(t, HasStatus(err, http.StatusConflict))
	assert.Equal(t, "already subscribed", ServerMessage(err))
}

func TestAPIError_Error(t *testing.T) {
	withMessage := NewAPIError(http.StatusBadRequest, "card declined", http.MethodPost, "/orders/confirm")
	assert.Equal(t, "POST /orders/confirm: 400 card declined", withMessage.Error())

	withoutMessage := NewAPIError(http.StatusNotFound, "", http.MethodGet, "/profile")
	assert.Equal(t, "GET /profile: 404 Not Found", withoutMessage.Error())
}

func TestStatusOf_NonAPIError(t *testing.T) {
	assert.Zero(t, StatusOf(errors.New("dial tcp: connection refused")))
	assert.Empty(t, ServerMessage(nil))
}
