package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// ActorResolver looks up the role of an authenticated user.
type ActorResolver interface {
	Handle(ctx context.Context, query queries.ResolveActorQuery) (identity.Actor, error)
}

// Authenticate verifies the HS256 bearer token, resolves the caller's role
// and stores the actor in the echo context. The token subject is the user id.
func Authenticate(secret []byte, resolver ActorResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization is missing")
			}

			userID, err := subject(tokenString, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token").SetInternal(err)
			}

			query, err := queries.NewResolveActorQuery(userID)
			if err != nil {
				return err
			}
			actor, err := resolver.Handle(c.Request().Context(), query)
			if err != nil {
				return err
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func subject(tokenString string, secret []byte) (kernel.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.UUID{}, err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return kernel.UUID{}, err
	}
	if sub == "" {
		return kernel.UUID{}, errors.New("token has no subject")
	}

	return kernel.UUIDFromString(sub)
}

func currentActor(c echo.Context) (identity.Actor, error) {
	actor, ok := c.Get(actorContextKey).(identity.Actor)
	if !ok {
		return identity.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is missing")
	}
	return actor, nil
}
