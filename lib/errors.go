package lib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Error taxonomy. Every service and storage failure maps onto one of
// these so the HTTP layer can translate in a single place.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// MapStorageError classifies an engine error into the taxonomy. Errors
// already carrying a taxonomy sentinel pass through untouched; everything
// else coming out of a storage engine is a storage failure and wraps
// ErrStorageUnavailable, keeping the engine detail for the logs.
func MapStorageError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

// SQLState extracts the SQLSTATE code from a Postgres error, whether it
// arrived through pgx or through bun's pgdriver. Empty when neither.
func SQLState(err error) string {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code
	}
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) {
		return drvErr.Field('C')
	}
	return ""
}

// IsConnectivityError reports whether an error smells like a transient
// connection problem rather than a logical failure.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	switch code := SQLState(err); {
	case code == "":
		// Fall through to message heuristics below.
	case strings.HasPrefix(code, "08"), // connection_exception class
		strings.HasPrefix(code, "53"), // insufficient_resources class
		code == "57P03":               // cannot_connect_now
		return true
	default:
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, fragment := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"eof",
		"connection closed",
		"bad connection",
		"connection pool exhausted",
		"too many clients",
	} {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}
