// Package auth resolves the owner identity every read and write is scoped to.
package auth

import (
	"context"
	"strings"
)

// Provider yields the authenticated owner, or ok=false when there is none.
type Provider interface {
	CurrentOwner(ctx context.Context) (owner string, ok bool)
}

// Static authenticates every request as the same owner. An empty owner
// means unauthenticated.
type Static string

func (s Static) CurrentOwner(context.Context) (string, bool) {
	owner := strings.TrimSpace(string(s))
	return owner, owner != ""
}

type ownerKey struct{}

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerKey{}, owner)
}

// FromContext returns the owner stored by WithOwner.
func FromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(ownerKey{}).(string)
	if !ok || owner == "" {
		return "", false
	}
	return owner, true
}

// Context reads the owner placed on the request context by the caller.
type Context struct{}

func (Context) CurrentOwner(ctx context.Context) (string, bool) {
	return FromContext(ctx)
}

// Chain tries each provider in order and returns the first owner found.
type Chain []Provider

func (c Chain) CurrentOwner(ctx context.Context) (string, bool) {
	for _, p := range c {
		if owner, ok := p.CurrentOwner(ctx); ok {
			return owner, true
		}
	}
	return "", false
}
