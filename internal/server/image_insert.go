package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"blindsteg/api"
	"blindsteg/api/blindsteg/InsertImage"
	"blindsteg/internal/logging"
	"blindsteg/internal/payload"
	nstegImage "blindsteg/pkg/image"
	"blindsteg/pkg/model"

	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
)

// InsertImageHandler godoc
//
// @Summary Hide data in the supplied image
// @Description This endpoint hides the supplied data in the least significant bits of the image and returns the resulting image. Requests sent as application/octet-stream are read as an InsertImage.InsertImageRequest flatbuffer and answered with an InsertImage.ImageResponse flatbuffer, but all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.InsertImageRequest true "Body with the carrier image, the data to hide and the configuration for the insertion"
// @Success 200 {object} api.InsertImageResponse
// @Failure 400 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /insert/image [post]
func InsertImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image insert request")

	flatbuffersRequest := ctx.ContentType() == mimeOctetStream

	var requestBody api.InsertImageRequest
	if flatbuffersRequest {
		rawBody, err := io.ReadAll(ctx.Request.Body)
		if err == nil {
			requestBody, err = insertRequestFromFlatbuffer(rawBody)
		}
		if err != nil {
			logger.WithError(err).Warn("Error decoding flatbuffers request body")
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
			return
		}
	} else if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Warn("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	outputImage, outputFormat, stats, err := insertIntoImage(requestBody)
	if err != nil {
		handleError(ctx, logger, "Error inserting data into image", err)
		return
	}

	logger.With("stats", toHumanizedInsertStats(stats)).Info("Data insertion was successful")

	if flatbuffersRequest {
		ctx.Data(http.StatusOK, mimeOctetStream, imageResponseFlatbuffer(outputImage, stats))
		return
	}
	ctx.JSON(http.StatusOK, api.InsertImageResponse{
		Image:         outputImage,
		OutputFormat:  outputFormat,
		PayloadBytes:  stats.PayloadBytes,
		CapacityBytes: stats.CapacityBytes,
	})
}

func insertIntoImage(request api.InsertImageRequest) ([]byte, string, model.InsertStats, error) {
	profile := request.Profile()
	iConfig, err := profile.InsertConfig()
	if err != nil {
		return nil, "", model.InsertStats{}, err
	}
	out, err := profile.OutputConfig()
	if err != nil {
		return nil, "", model.InsertStats{}, err
	}

	img, _, err := nstegImage.Decode(bytes.NewReader(request.Image))
	if err != nil {
		return nil, "", model.InsertStats{}, fmt.Errorf("%w: %w", errInvalidImageData, err)
	}

	data := request.Data
	if profile.Compress {
		data = payload.Compress(data)
	}
	if err = img.InsertData(data, iConfig); err != nil {
		return nil, "", img.InsertStats(), err
	}

	// pre allocate with size of original, since it should be similar
	outputImage := bytes.NewBuffer(make([]byte, 0, len(request.Image)))
	if err = img.Encode(outputImage, out); err != nil {
		return nil, "", img.InsertStats(), err
	}
	return outputImage.Bytes(), string(out.Format), img.InsertStats(), nil
}

// insertRequestFromFlatbuffer reads an InsertImage.InsertImageRequest. Malformed buffers make the generated accessors
// panic, so those panics are turned into errors.
func insertRequestFromFlatbuffer(rawBody []byte) (request api.InsertImageRequest, err error) {
	if len(rawBody) < flatbuffers.SizeUOffsetT {
		return api.InsertImageRequest{}, fmt.Errorf("flatbuffer too short: %d bytes", len(rawBody))
	}
	defer func() {
		if r := recover(); r != nil {
			request, err = api.InsertImageRequest{}, fmt.Errorf("malformed flatbuffer: %v", r)
		}
	}()

	fbRequest := InsertImage.GetRootAsInsertImageRequest(rawBody, 0)
	redBits, greenBits := int(fbRequest.RedBits()), int(fbRequest.GreenBits())
	blueBits, alphaBits := int(fbRequest.BlueBits()), int(fbRequest.AlphaBits())

	request = api.InsertImageRequest{
		Image: fbRequest.ImageBytes(),
		Data:  fbRequest.DataBytes(),
		Bits: api.ChannelBits{
			Red:   &redBits,
			Green: &greenBits,
			Blue:  &blueBits,
			Alpha: &alphaBits,
		},
		RemainingBits: string(fbRequest.RemainingBits()),
		OutputFormat:  string(fbRequest.OutputFormat()),
		Compress:      fbRequest.Compress(),
	}
	if fbRequest.HasSeed() {
		seed := fbRequest.Seed()
		request.Seed = &seed
	}
	if len(request.Image) == 0 {
		return api.InsertImageRequest{}, errors.New("flatbuffer has no image")
	}
	return request, nil
}

func imageResponseFlatbuffer(outputImage []byte, stats model.InsertStats) []byte {
	fbResponseBuilder := flatbuffers.NewBuilder(len(outputImage) + 64)

	// vectors must be created before the table is started
	imageOffset := fbResponseBuilder.CreateByteVector(outputImage)
	InsertImage.ImageResponseStart(fbResponseBuilder)
	InsertImage.ImageResponseAddImage(fbResponseBuilder, imageOffset)
	InsertImage.ImageResponseAddPayloadBytes(fbResponseBuilder, uint64(stats.PayloadBytes))
	InsertImage.ImageResponseAddCapacityBytes(fbResponseBuilder, uint64(stats.CapacityBytes))
	response := InsertImage.ImageResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)
	return fbResponseBuilder.FinishedBytes()
}
