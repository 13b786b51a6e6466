package response

import (
	"encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"strconv"

	"talkify/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	gojson "github.com/goccy/go-json"
)

// Success writes the payload as-is with 200.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes the payload as-is with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Fail writes the error body with the given status code.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// isBadJSON reports whether err is a decode failure of the request
// body. gin's default binder decodes with encoding/json; the goccy
// equivalents are matched too for builds that swap the codec in.
func isBadJSON(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var goTypeErr *gojson.UnmarshalTypeError
	var goSyntaxErr *gojson.SyntaxError

	return errors.As(err, &typeErr) ||
		errors.As(err, &syntaxErr) ||
		errors.As(err, &goTypeErr) ||
		errors.As(err, &goSyntaxErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

// Error converts an error into its HTTP response. Binding and
// validation failures become 400, known service errors use the
// ErrorMap, anything else is a logged 500.
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	if isBadJSON(err) {
		Fail(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	var numError *strconv.NumError
	if errors.As(err, &numError) {
		Fail(c, http.StatusBadRequest, "Invalid numeric parameter")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
		Fail(c, status, "Internal server error")
		return
	}
	Fail(c, status, err.Error())
}
