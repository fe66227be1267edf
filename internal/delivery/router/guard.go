package router

// Decision is the outcome of guarding one navigation.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToHome:
		return "redirect-to-home"
	default:
		return "unknown"
	}
}

// Guard decides a navigation to a route with meta. The auth requirement is
// checked before the guest requirement.
func Guard(meta RouteMeta, authenticated bool) Decision {
	if meta.RequiresAuth && !authenticated {
		return RedirectToLogin
	}
	if meta.RequiresGuest && authenticated {
		return RedirectToHome
	}

	return Allow
}
