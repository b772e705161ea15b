package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/julianstephens/cadence/internal/agenda"
	"github.com/julianstephens/cadence/internal/constants"
	apperrors "github.com/julianstephens/cadence/internal/errors"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ResolveDate accepts YYYY-MM-DD or one of today, tomorrow and yesterday
// relative to today.
func ResolveDate(arg, today string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return utils.AddDays(today, 1)
	case "yesterday":
		return utils.AddDays(today, -1)
	}
	if err := models.ValidateDate(arg); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return arg, nil
}

// ParseRecurrence parses a recurrence name, case-insensitively.
func ParseRecurrence(s string) (constants.RecurrenceType, error) {
	r := constants.RecurrenceType(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return constants.RecurrenceNone, nil
	}
	if !r.Valid() {
		return "", fmt.Errorf("%w: invalid recurrence %q (expected one of %s)",
			apperrors.ErrInvalidInput, s, RecurrenceNames())
	}
	return r, nil
}

func RecurrenceNames() string {
	names := make([]string, len(constants.Recurrences))
	for i, r := range constants.Recurrences {
		names[i] = string(r)
	}
	return strings.Join(names, "|")
}

// ValidateColor checks that s is a #RRGGBB hex colour.
func ValidateColor(s string) error {
	if !hexColor.MatchString(s) {
		return fmt.Errorf("%w: invalid color %q (expected #RRGGBB)", apperrors.ErrInvalidInput, s)
	}
	return nil
}

// CategoryFilter turns a category name or id into a query filter. An empty
// ref matches every task.
func (c *Context) CategoryFilter(ref string) (agenda.Filter, error) {
	if ref == "" {
		return agenda.Filter{}, nil
	}
	cat, err := c.Service.FindCategory(c.Context(), ref)
	if err != nil {
		return agenda.Filter{}, fmt.Errorf("category %q: %w", ref, err)
	}
	return agenda.Filter{CategoryID: cat.ID}, nil
}
