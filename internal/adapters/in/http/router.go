package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance serving s: request ids, panic recovery,
// request logging and problem responses for every error.
func NewRouter(s *Server, logger *slog.Logger, jwtSecret []byte) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())

	s.RegisterRoutes(e, jwtSecret)
	return e
}
