package server

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "blindsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	mimeOctetStream = "application/octet-stream"
)

// StartServer godoc
// @title blindsteg API
// @version 1.0
// @description An API to hide data in, and recover data from, the least significant bits of images
// @BasePath /api/v1
func StartServer(port string) error {
	return NewRouter().Run(fmt.Sprintf(":%s", port))
}

func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/insert/image", InsertImageHandler)
	v1.POST("/extract/image", ExtractImageHandler)
	v1.POST("/capacity/image", CapacityHandler)

	return r
}

type requestLog struct {
	Timestamp       string `json:"timestamp"`
	StatusCode      int    `json:"status_code"`
	Latency         string `json:"latency"`
	LatencyRaw      int64  `json:"latency_raw"`
	ResponseSize    string `json:"response_size"`
	ResponseSizeRaw int    `json:"response_size_raw"`
	ClientIP        string `json:"client_ip"`
	Method          string `json:"method"`
	Path            string `json:"path"`
	Error           string `json:"error,omitempty"`
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	bodySize := max(param.BodySize, 0)
	line, err := json.Marshal(requestLog{
		Timestamp:       param.TimeStamp.Format(RFC3339Millis),
		StatusCode:      param.StatusCode,
		Latency:         param.Latency.String(),
		LatencyRaw:      int64(param.Latency),
		ResponseSize:    humanize.Bytes(uint64(bodySize)),
		ResponseSizeRaw: bodySize,
		ClientIP:        param.ClientIP,
		Method:          param.Method,
		Path:            param.Path,
		Error:           param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(line) + "\n"
}
