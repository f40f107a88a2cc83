// Package clientid issues the opaque client-identifier cookie. Nothing is
// stored server-side: a request either carries the cookie or gets a new one.
package clientid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// DefaultCookieName is the cookie clients echo back on every request.
const DefaultCookieName = "clientId"

// Logger is the subset of logger.Logger the middleware needs.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
}

// Issuer mints client-identifier cookies.
type Issuer struct {
	name  string
	newID func() string
}

// NewIssuer returns an Issuer for the named cookie. An empty name selects
// DefaultCookieName.
func NewIssuer(name string) *Issuer {
	if name == "" {
		name = DefaultCookieName
	}
	return &Issuer{name: name, newID: uuid.NewString}
}

// Name returns the cookie name.
func (i *Issuer) Name() string {
	return i.name
}

// FromRequest returns the request's client cookie, or nil.
func (i *Issuer) FromRequest(r *http.Request) *http.Cookie {
	c, err := r.Cookie(i.name)
	if err != nil {
		return nil
	}
	return c
}

// Issue returns the cookie to attach to a response given the request's
// cookie: a new random one when existing is nil, otherwise nil.
func (i *Issuer) Issue(existing *http.Cookie) *http.Cookie {
	if existing != nil {
		return nil
	}
	return &http.Cookie{
		Name:     i.name,
		Value:    i.newID(),
		Path:     "/",
		HttpOnly: true,
	}
}

// Middleware sets a new cookie on every response whose request lacked one.
// onIssue, when non-nil, is called for each minted cookie.
func (i *Issuer) Middleware(log Logger, onIssue func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c := i.Issue(i.FromRequest(r)); c != nil {
				http.SetCookie(w, c)
				log.Info(r.Context(), "generated cookie", "cookie", c.Name, "value", c.Value)
				if onIssue != nil {
					onIssue()
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
