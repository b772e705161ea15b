package storage

import (
	"errors"
	"net/url"
	"strings"
)

var (
	// ErrNotFound is returned when a record does not exist for the owner.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("record already exists")
	// ErrReferenced is returned when a delete is blocked by a foreign key.
	ErrReferenced = errors.New("record is still referenced")
)

// IsPostgres reports whether dsn is a PostgreSQL connection URL.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password, in either URL or key=value form.
func HasEmbeddedCredentials(dsn string) bool {
	if IsPostgres(dsn) {
		u, err := url.Parse(dsn)
		if err != nil {
			// Unparseable URLs are rejected rather than connected with.
			return true
		}
		_, hasPassword := u.User.Password()
		return hasPassword
	}
	for _, pair := range strings.Fields(dsn) {
		key, _, ok := strings.Cut(pair, "=")
		if ok && strings.EqualFold(strings.TrimSpace(key), "password") {
			return true
		}
	}
	return false
}
