package service

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/kinship/internal/auth"
	"github.com/mmynk/kinship/internal/middleware"
	"github.com/mmynk/kinship/internal/storage"
	"github.com/mmynk/kinship/internal/treegraph"
	"github.com/mmynk/kinship/pkg/api/apiconnect"
)

// Mount registers every Connect service on mux. AuthService accepts
// anonymous callers; the others require a valid token.
func Mount(mux *http.ServeMux, store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager, layouter treegraph.Layouter) {
	public := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.OptionalAuth(jwtManager),
		middleware.ValidationInterceptor(),
	)
	protected := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.RequireAuth(jwtManager),
		middleware.ValidationInterceptor(),
	)

	mux.Handle(apiconnect.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, store, slog.Default()), public))
	mux.Handle(apiconnect.NewMemberServiceHandler(NewMemberService(store), protected))
	mux.Handle(apiconnect.NewFamilyServiceHandler(NewFamilyService(store, layouter), protected))
	mux.Handle(apiconnect.NewRelationServiceHandler(NewRelationService(store), protected))
}
