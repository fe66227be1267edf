package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	tests := []struct {
		name          string
		meta          RouteMeta
		authenticated bool
		want          Decision
	}{
		{name: "auth route, anonymous", meta: RouteMeta{RequiresAuth: true}, authenticated: false, want: RedirectToLogin},
		{name: "auth route, signed in", meta: RouteMeta{RequiresAuth: true}, authenticated: true, want: Allow},
		{name: "guest route, signed in", meta: RouteMeta{RequiresGuest: true}, authenticated: true, want: RedirectToHome},
		{name: "guest route, anonymous", meta: RouteMeta{RequiresGuest: true}, authenticated: false, want: Allow},
		{name: "public route, anonymous", meta: RouteMeta{}, authenticated: false, want: Allow},
		{name: "public route, signed in", meta: RouteMeta{}, authenticated: true, want: Allow},
		{name: "both flags, anonymous checks auth first", meta: RouteMeta{RequiresAuth: true, RequiresGuest: true}, authenticated: false, want: RedirectToLogin},
		{name: "both flags, signed in falls to guest check", meta: RouteMeta{RequiresAuth: true, RequiresGuest: true}, authenticated: true, want: RedirectToHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guard(tt.meta, tt.authenticated))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-to-login", RedirectToLogin.String())
	assert.Equal(t, "redirect-to-home", RedirectToHome.String())
}
