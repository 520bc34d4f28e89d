package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"
	"github.com/Keloce-2005/Back-office/internal/pkg/auth"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const principalKey = "principal"

// TokenParser resolves a bearer token into the calling account.
type TokenParser interface {
	Parse(token string) (auth.Principal, error)
}

// Authenticate requires a valid bearer token and stores the caller in the
// echo context.
func Authenticate(tokens TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := tokens.Parse(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// RequireRole lets only the given roles through. It must run after Authenticate.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := principalFrom(c)
			for _, role := range roles {
				if principal.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "role "+principal.Role.String()+" is not allowed")
		}
	}
}

func principalFrom(c echo.Context) auth.Principal {
	principal, _ := c.Get(principalKey).(auth.Principal)
	return principal
}

func callerID(c echo.Context) kernel.UUID {
	return principalFrom(c).UserID
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}
