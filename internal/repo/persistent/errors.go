package persistent

import (
	"errors"
	"fmt"

	"github.com/andreyxaxa/Background-Remover/pkg/types/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	pgClassDataException       = "22"
	pgClassIntegrityConstraint = "23"
)

// classifyPgError: bad data is rejected for good; anything else (connection
// loss, timeouts, serialization failures, missing schema) may heal.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case pgClassDataException, pgClassIntegrityConstraint:
			return fmt.Errorf("%w: %w", errs.ErrRecordRejected, err)
		}
	}

	return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
}

func classifyGRPCError(err error) error {
	switch status.Code(err) {
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return fmt.Errorf("%w: %w", errs.ErrRecordRejected, err)
	default:
		return fmt.Errorf("%w: %w", errs.ErrSinkUnavailable, err)
	}
}
