package entity

import "net/url"

// Location is a navigable client location.
type Location struct {
	Name  string // Route name, filled in once resolved.
	Path  string
	Query url.Values
}

// String renders the location as a relative URL.
func (l Location) String() string {
	if len(l.Query) == 0 {
		return l.Path
	}

	return l.Path + "?" + l.Query.Encode()
}
