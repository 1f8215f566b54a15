package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/catalog"
	"github.com/trezcool/eneo/core/location"
)

// lookupError is the body sent back when a path names a location that does not exist.
type lookupError struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case *catalog.UnknownCategoryError, *catalog.UnknownSubcategoryError, *catalog.UnknownItemError:
			lookupErr, _ := location.AsLookupError(origErr)
			code = http.StatusNotFound
			message = lookupError{Error: lookupErr.Message, Suggestions: lookupErr.Suggestions}
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			message = core.TranslateErrors(origErr, translator)
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default: // any other error is a server error
			code = http.StatusInternalServerError
			msg := http.StatusText(http.StatusInternalServerError)
			message = msg

			logger.Error(msg, errors.Wrap(err, msg), map[string]interface{}{
				"method":    ctx.Request().Method,
				"path":      ctx.Request().URL.Path,
				"requestId": ctx.Response().Header().Get(echo.HeaderXRequestID),
			})

			if ctx.Echo().Debug {
				message = err.Error()
			}

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
