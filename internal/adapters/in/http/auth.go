package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"foodorder/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// ActorClaims are the access-token claims the service relies on: the subject
// is the username, role one of the kernel role names.
type ActorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ActorMiddleware authenticates the bearer token and stores the resulting
// kernel.Actor in the echo context. Tokens are issued elsewhere; only HS256
// signatures with secret are accepted.
func ActorMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			actor, err := ParseActor(raw, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// ParseActor validates an access token and converts its claims to an actor.
func ParseActor(raw string, secret []byte) (kernel.Actor, error) {
	var claims ActorClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signature method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, err
	}
	if !token.Valid {
		return kernel.Actor{}, errors.New("token is not valid")
	}

	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return kernel.Actor{}, err
	}
	return kernel.NewActor(claims.Subject, role)
}

func actorFrom(c echo.Context) (kernel.Actor, error) {
	actor, ok := c.Get(actorKey).(kernel.Actor)
	if !ok {
		return kernel.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return actor, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
