package server

import (
	"errors"
	"net/http"

	"blindsteg/api"
	"blindsteg/internal/logging"
	"blindsteg/internal/payload"
	"blindsteg/pkg/config"
	nstegImage "blindsteg/pkg/image"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidImageData = errors.New("invalid image")

	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errInternal          = api.Error{Code: "internal_error", Error: "An unexpected error occurred while processing the image"}
)

// errorResponse maps library errors to a status code and a body safe to return to clients
func errorResponse(err error) (int, api.Error) {
	switch {
	case errors.Is(err, errInvalidImageData):
		return http.StatusBadRequest, errInvalidImage
	case errors.Is(err, config.ErrInvalidConfiguration),
		errors.Is(err, config.ErrInvalidBitWidth),
		errors.Is(err, config.ErrUnknownRemainingBits),
		errors.Is(err, config.ErrUnknownOutputFormat),
		errors.Is(err, nstegImage.ErrUnsupportedOutputFormat),
		errors.Is(err, nstegImage.ErrOpaqueCarrier):
		return http.StatusBadRequest, api.Error{Code: "invalid_configuration", Error: err.Error()}
	case errors.Is(err, nstegImage.ErrCapacityExceeded):
		return http.StatusUnprocessableEntity, api.Error{Code: "capacity_exceeded", Error: err.Error()}
	case errors.Is(err, nstegImage.ErrTruncatedLengthField),
		errors.Is(err, nstegImage.ErrTruncatedPayload),
		errors.Is(err, payload.ErrCorruptPayload):
		return http.StatusUnprocessableEntity, api.Error{Code: "extract_error", Error: err.Error()}
	}
	return http.StatusInternalServerError, errInternal
}

func handleError(ctx *gin.Context, logger *logging.Logger, msg string, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		logger.WithError(err).Error(msg)
	} else {
		logger.WithError(err).Warn(msg)
	}
	ctx.AbortWithStatusJSON(status, body)
}
