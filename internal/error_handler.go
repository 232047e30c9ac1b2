package internal

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/babel/pkg/i18n"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

// ErrorPayload describes one failed request.
type ErrorPayload struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Title     string `json:"title,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// statusCoder is implemented by errors that carry their own status, such
// as the panic and timeout errors of package middlewares.
type statusCoder interface {
	StatusCode() int
}

// DefaultErrorHandler renders errors as ErrorBody. HTTPError values keep
// their status and message; other errors become 500 with a generic
// message, unless they implement StatusCode. Server errors are logged.
// When a translator is present, messages with an ErrorCode are localized
// from the "errors.<code>" key.
func DefaultErrorHandler(c Context, err error) error {
	httpErr := toHTTPError(err)
	if httpErr.RequestID == "" {
		httpErr.RequestID = c.RequestID()
	}

	if httpErr.Code >= http.StatusInternalServerError {
		c.LogError("request failed",
			slog.Int("status", httpErr.Code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}

	msg := httpErr.Message
	if tr := c.Translator(); tr != nil && httpErr.ErrorCode != "" {
		msg = tr.Translate("errors."+httpErr.ErrorCode, i18n.WithDefault(msg))
	}

	return c.JSON(httpErr.Code, ErrorBody{Error: ErrorPayload{
		Status:    httpErr.Code,
		Message:   msg,
		Title:     httpErr.Title,
		Detail:    httpErr.Detail,
		Code:      httpErr.ErrorCode,
		RequestID: httpErr.RequestID,
	}})
}

func toHTTPError(err error) *HTTPError {
	if httpErr := AsHTTPError(err); httpErr != nil {
		return httpErr
	}

	code := http.StatusInternalServerError
	var sc statusCoder
	if errors.As(err, &sc) && sc.StatusCode() >= 400 {
		code = sc.StatusCode()
	}
	return &HTTPError{Code: code, Message: http.StatusText(code), Err: err}
}
