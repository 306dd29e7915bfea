package server

import (
	"bytes"
	"fmt"
	"net/http"

	"blindsteg/api"
	"blindsteg/internal/logging"
	nstegImage "blindsteg/pkg/image"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// CapacityHandler godoc
//
// @Summary Calculate how much data fits in an image
// @Description This endpoint returns the largest payload, in bytes, that can be hidden in the supplied image with the given bit configuration
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityRequest true "Body with the image to measure"
// @Success 200 {object} api.CapacityResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /capacity/image [post]
func CapacityHandler(ctx *gin.Context) {
	var requestBody api.CapacityRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image capacity request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	bits, err := requestBody.Profile().ChannelBits()
	if err != nil {
		handleError(ctx, logger, "Invalid bit configuration", err)
		return
	}

	img, _, err := nstegImage.Decode(bytes.NewReader(requestBody.Image))
	if err != nil {
		handleError(ctx, logger, "Error decoding request image", fmt.Errorf("%w: %w", errInvalidImageData, err))
		return
	}
	if err = bits.Validate(img.Format().Channels()); err != nil {
		handleError(ctx, logger, "Invalid bit configuration", err)
		return
	}

	capacity := img.MaxDataCapacity(bits)
	ctx.JSON(http.StatusOK, api.CapacityResponse{
		Width:         img.Width(),
		Height:        img.Height(),
		PixelFormat:   img.Format().String(),
		CapacityBytes: capacity,
		CapacityHuman: humanize.Bytes(uint64(capacity)),
	})
}
