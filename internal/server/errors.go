package server

import (
	"errors"
	"net/http"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/config"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/pipeline"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/prompting"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var missingParam *prompting.MissingParameterError
	if errors.As(err, &missingParam) {
		return http.StatusBadRequest
	}
	var unavailable *pipeline.ServiceUnavailableError
	if errors.As(err, &unavailable) {
		return http.StatusServiceUnavailable
	}
	var configErr *config.ConfigurationError
	if errors.As(err, &configErr) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// publicMessage maps an error to a user-facing string. Raw provider errors
// may embed request URLs or credentials, so they never pass through.
func publicMessage(err error) string {
	var missingParam *prompting.MissingParameterError
	if errors.As(err, &missingParam) {
		return missingParam.Error()
	}
	var unavailable *pipeline.ServiceUnavailableError
	if errors.As(err, &unavailable) {
		return "generation service unavailable, please try again later"
	}
	var configErr *config.ConfigurationError
	if errors.As(err, &configErr) {
		return configErr.Error()
	}
	return "internal error"
}
