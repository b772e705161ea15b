// Package agenda materializes the task instances visible on a date or range
// and applies completion, task and category mutations for the current owner.
package agenda

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/cadence/internal/auth"
	"github.com/julianstephens/cadence/internal/clock"
	apperrors "github.com/julianstephens/cadence/internal/errors"
	"github.com/julianstephens/cadence/internal/storage"
)

// Filter narrows a query. An empty CategoryID matches every task; otherwise
// only tasks referencing exactly that category are kept.
type Filter struct {
	CategoryID string
}

func (f Filter) matches(categoryID *string) bool {
	if f.CategoryID == "" {
		return true
	}
	return categoryID != nil && *categoryID == f.CategoryID
}

type Service struct {
	store storage.Provider
	auth  auth.Provider
	clock clock.Clock
	newID func() string
}

func New(store storage.Provider, authn auth.Provider, clk clock.Clock) *Service {
	return &Service{
		store: store,
		auth:  authn,
		clock: clk,
		newID: uuid.NewString,
	}
}

// Now returns the instant the service clock reports.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// CurrentDate returns the calendar date the service clock reports as today.
func (s *Service) CurrentDate() string {
	return clock.Today(s.clock)
}

// owner resolves the caller for queries, which treat absence as "nothing visible".
func (s *Service) owner(ctx context.Context) (string, bool) {
	if s.auth == nil {
		return "", false
	}
	return s.auth.CurrentOwner(ctx)
}

// requireOwner resolves the caller for mutations.
func (s *Service) requireOwner(ctx context.Context) (string, error) {
	owner, ok := s.owner(ctx)
	if !ok {
		return "", apperrors.ErrUnauthenticated
	}
	return owner, nil
}

// mapStoreErr translates storage errors into the service taxonomy.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.ErrNotFoundOrUnauthorized
	case errors.Is(err, storage.ErrConflict):
		return apperrors.ErrDuplicateName
	case errors.Is(err, storage.ErrReferenced):
		return apperrors.ErrReferentialConflict
	default:
		return err
	}
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
}
