package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	TypeBadRequest   = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	TypeForbidden    = "https://tools.ietf.org/html/rfc7231#section-6.5.3"
	TypeNotFound     = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	TypeUnauthorized = TypeNotFound

	// MIMEProblemJSON is the media type of problem details bodies (RFC 7807).
	MIMEProblemJSON = "application/problem+json"

	validationTitle = "One or more validation errors occured"
)

// ProblemDetails is the error body returned by both APIs. Handlers return it
// as an error and HTTPErrorHandler writes it with the carried status.
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("%d %s: %s", p.Status, p.Title, p.Detail)
}

// StatusCode reports the HTTP status the problem is written with.
func (p *ProblemDetails) StatusCode() int {
	return p.Status
}

// NewProblem creates a problem with an explicit type and title.
func NewProblem(status int, typ, title, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   typ,
		Title:  title,
		Status: status,
		Detail: detail,
	}
}

// ValidationFailed is returned when a request body or path value is malformed.
func ValidationFailed(detail string) *ProblemDetails {
	return NewProblem(http.StatusBadRequest, TypeBadRequest, validationTitle, detail)
}

// Unauthorized is returned for bad credentials and rejected bearer tokens.
func Unauthorized() *ProblemDetails {
	return NewProblem(http.StatusUnauthorized, TypeUnauthorized, "Unauthorized", "Unauthorized")
}

// Forbidden is returned when a valid token lacks the required role.
func Forbidden() *ProblemDetails {
	return NewProblem(http.StatusForbidden, TypeForbidden, "Forbidden", "Forbidden")
}

// NotFound uses message as both title and detail, e.g. "Note is not found".
func NotFound(message string) *ProblemDetails {
	return NewProblem(http.StatusNotFound, TypeNotFound, message, message)
}

// NewHTTPErrorHandler returns an echo error handler that renders problem
// details and hands every other error to echo's default handler.
func NewHTTPErrorHandler(e *echo.Echo, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var problem *ProblemDetails
		if stderrors.As(err, &problem) {
			if writeErr := writeProblem(c, problem); writeErr != nil {
				log.Error().Err(writeErr).Msg("write problem details")
			}
			return
		}

		var httpErr *echo.HTTPError
		if !stderrors.As(err, &httpErr) {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Msg("unhandled error")
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func writeProblem(c echo.Context, problem *ProblemDetails) error {
	c.Response().Header().Set(echo.HeaderContentType, MIMEProblemJSON)
	if c.Request().Method == http.MethodHead {
		return c.NoContent(problem.Status)
	}
	c.Response().WriteHeader(problem.Status)
	return c.Echo().JSONSerializer.Serialize(c, problem, "")
}
