package http

import (
	"errors"
	"fmt"
	"net/http"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

const problemContentType = "application/problem+json"

// Problem is an RFC 7807 problem details body. Kind repeats the domain error
// classification so clients can branch without parsing type URIs.
type Problem struct {
	Type   string    `json:"type"`
	Title  string    `json:"title"`
	Status int       `json:"status"`
	Detail string    `json:"detail,omitempty"`
	Kind   errs.Kind `json:"kind,omitempty"`
}

type problemTemplate struct {
	typ    string
	title  string
	status int
}

func getProblemTemplates() map[errs.Kind]problemTemplate {
	return map[errs.Kind]problemTemplate{
		errs.KindNotFound:          {"/problems/not-found", "Resource Not Found", http.StatusNotFound},
		errs.KindInvalidTransition: {"/problems/invalid-transition", "Invalid Status Transition", http.StatusConflict},
		errs.KindInsufficientStock: {"/problems/insufficient-stock", "Insufficient Stock", http.StatusConflict},
		errs.KindUnauthorized:      {"/problems/unauthorized", "Not Allowed", http.StatusForbidden},
		errs.KindValidation:        {"/problems/validation-error", "Validation Error", http.StatusBadRequest},
		errs.KindInternal:          {"/problems/internal-error", "Internal Server Error", http.StatusInternalServerError},
	}
}

// ProblemFor maps an error to its problem body. Internal errors never expose
// their message.
func ProblemFor(err error) Problem {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return problemForHTTPError(httpErr)
	}

	kind := errs.KindOf(err)
	tpl := getProblemTemplates()[kind]
	p := Problem{Type: tpl.typ, Title: tpl.title, Status: tpl.status, Kind: kind}
	if kind != errs.KindInternal {
		p.Detail = err.Error()
	}
	return p
}

func problemForHTTPError(httpErr *echo.HTTPError) Problem {
	p := Problem{
		Type:   "about:blank",
		Title:  http.StatusText(httpErr.Code),
		Status: httpErr.Code,
	}
	switch httpErr.Code {
	case http.StatusUnauthorized:
		p.Type = "/problems/unauthenticated"
	case http.StatusBadRequest:
		p.Type = "/problems/bad-request"
		p.Kind = errs.KindValidation
	}
	if httpErr.Code < http.StatusInternalServerError {
		p.Detail = fmt.Sprint(httpErr.Message)
	}
	return p
}

// ErrorHandler renders every error returned by a route as a problem response.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	p := ProblemFor(err)
	if p.Status >= http.StatusInternalServerError {
		logging.FromContext(c.Request().Context()).Error("request failed", "error", err)
	}

	c.Response().Header().Set(echo.HeaderContentType, problemContentType)
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(p.Status)
		return
	}
	_ = c.JSON(p.Status, p)
}
