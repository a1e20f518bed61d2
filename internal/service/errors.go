package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kinship/internal/auth"
	"github.com/mmynk/kinship/internal/middleware"
	"github.com/mmynk/kinship/internal/relation"
	"github.com/mmynk/kinship/internal/storage"
)

// errInternal is the only detail callers see for store failures.
var errInternal = errors.New("internal error")

// toConnectError maps a domain error to a Connect error. Validation reasons
// and missing entities pass through; anything else is logged and replaced by
// a generic internal error.
func toConnectError(op string, err error, attrs ...any) error {
	if reason, ok := relation.ReasonOf(err); ok {
		code := connect.CodeFailedPrecondition
		if reason == relation.ReasonSameGender {
			code = connect.CodeInvalidArgument
		}
		slog.Info(op+" rejected", append(attrs, "reason", reason)...)
		cerr := connect.NewError(code, err)
		cerr.Meta().Set("Kinship-Reason", string(reason))
		return cerr
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		slog.Info(op+" not found", append(attrs, "error", err)...)
		return connect.NewError(connect.CodeNotFound, errors.New("not found"))
	case errors.Is(err, storage.ErrConflict):
		slog.Info(op+" conflict", append(attrs, "error", err)...)
		return connect.NewError(connect.CodeAlreadyExists, errors.New("already exists"))
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}

	slog.Error(op+" failed", append(attrs, "error", err)...)
	return connect.NewError(connect.CodeInternal, errInternal)
}

// ownerID returns the authenticated caller, who owns every member and
// family the request may touch.
func ownerID(ctx context.Context) (string, error) {
	id := middleware.GetUserID(ctx)
	if id == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

func invalidArgument(err error) error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}
