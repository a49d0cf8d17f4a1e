package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// CallerResolver loads the role set of a known principal.
type CallerResolver interface {
	Handle(ctx context.Context, query queries.ResolveCallerQuery) (identity.Caller, error)
}

// PrincipalEnsurer provisions a principal seen for the first time.
type PrincipalEnsurer interface {
	Handle(ctx context.Context, cmd commands.EnsurePrincipalCommand) (identity.Caller, error)
}

// TokenConfig describes how bearer tokens issued by the identity provider are
// verified. Issuer is checked only when set.
type TokenConfig struct {
	Secret []byte
	Issuer string
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Authenticate verifies the HS256 bearer token, if any, and stores the
// resolved identity.Caller in the echo context. Principals seen for the first
// time are provisioned. Requests without an Authorization header pass through
// anonymously and are rejected later by handlers that need a caller.
func Authenticate(cfg TokenConfig, resolver CallerResolver, ensurer PrincipalEnsurer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(ctx)
			}

			claims, err := parseBearer(header, cfg)
			if err != nil {
				return errors.Join(errUnauthenticated, err)
			}

			principalID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return errors.Join(errUnauthenticated, fmt.Errorf("subject: %w", err))
			}

			caller, err := resolveCaller(ctx.Request().Context(), principalID, claims, resolver, ensurer)
			if err != nil {
				return err
			}

			ctx.Set(callerKey, caller)
			return next(ctx)
		}
	}
}

func parseBearer(header string, cfg TokenConfig) (tokenClaims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return tokenClaims{}, errors.New("authorization header must use the Bearer scheme")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return cfg.Secret, nil
	}, options...)
	if err != nil {
		return tokenClaims{}, err
	}
	if claims.Username == "" {
		return tokenClaims{}, errors.New("token has no username claim")
	}
	return claims, nil
}

func resolveCaller(
	ctx context.Context,
	principalID kernel.UUID,
	claims tokenClaims,
	resolver CallerResolver,
	ensurer PrincipalEnsurer,
) (identity.Caller, error) {
	query, err := queries.NewResolveCallerQuery(principalID)
	if err != nil {
		return identity.Caller{}, err
	}

	caller, err := resolver.Handle(ctx, query)
	if err == nil {
		return caller, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return identity.Caller{}, err
	}

	cmd, err := commands.NewEnsurePrincipalCommand(principalID, claims.Username, claims.Email)
	if err != nil {
		return identity.Caller{}, errors.Join(errUnauthenticated, err)
	}
	return ensurer.Handle(ctx, cmd)
}

// requireCaller returns the authenticated caller or errUnauthenticated.
func requireCaller(ctx echo.Context) (identity.Caller, error) {
	caller, ok := ctx.Get(callerKey).(identity.Caller)
	if !ok {
		return identity.Caller{}, errUnauthenticated
	}
	return caller, nil
}
