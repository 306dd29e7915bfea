package server

import (
	"bytes"
	"fmt"
	"net/http"

	"blindsteg/api"
	"blindsteg/internal/logging"
	"blindsteg/internal/payload"
	nstegImage "blindsteg/pkg/image"

	"github.com/gin-gonic/gin"
)

// ExtractImageHandler godoc
//
// @Summary Recover data hidden in an image
// @Description This endpoint recovers the data previously hidden in the supplied image. The bit configuration must match the one used when inserting the data
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.ExtractImageRequest true "Body with the image to extract data from"
// @Success 200 {object} api.ExtractImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /extract/image [post]
func ExtractImageHandler(ctx *gin.Context) {
	var requestBody api.ExtractImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image extract request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	profile := requestBody.Profile()
	eConfig, err := profile.ExtractConfig()
	if err != nil {
		handleError(ctx, logger, "Invalid extract configuration", err)
		return
	}

	img, _, err := nstegImage.Decode(bytes.NewReader(requestBody.Image))
	if err != nil {
		handleError(ctx, logger, "Error decoding request image", fmt.Errorf("%w: %w", errInvalidImageData, err))
		return
	}

	data, err := img.ExtractData(eConfig)
	if err != nil {
		handleError(ctx, logger, "Error extracting data from image", err)
		return
	}
	if profile.Compress {
		if data, err = payload.Decompress(data); err != nil {
			handleError(ctx, logger, "Error decompressing extracted data", err)
			return
		}
	}

	logger.With("stats", toHumanizedExtractStats(img.ExtractStats())).Info("Data extraction was successful")

	ctx.JSON(http.StatusOK, api.ExtractImageResponse{Data: data})
}
