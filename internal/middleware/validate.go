package middleware

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/kinship/pkg/api"
)

// ValidationInterceptor rejects requests whose message fails its validate
// tags before any handler runs.
func ValidationInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if err := api.Validate(req.Any()); err != nil {
				return nil, connect.NewError(connect.CodeInvalidArgument, err)
			}
			return next(ctx, req)
		}
	}
}
