package api

import (
	"blindsteg/pkg/config"
)

// ChannelBits holds the number of least significant bits to use in each channel. Omitted channels keep the defaults
// of one bit for red, green and blue and none for alpha.
type ChannelBits struct {
	Red   *int `json:"red,omitempty"`
	Green *int `json:"green,omitempty"`
	Blue  *int `json:"blue,omitempty"`
	Alpha *int `json:"alpha,omitempty"`
}

func (b ChannelBits) toProfileBits() config.ProfileBits {
	return config.ProfileBits{Red: b.Red, Green: b.Green, Blue: b.Blue, Alpha: b.Alpha}
}

type InsertImageRequest struct {
	Image         []byte      `json:"image" binding:"required"`
	Data          []byte      `json:"data"`
	Bits          ChannelBits `json:"bits"`
	RemainingBits string      `json:"remaining_bits" enums:"none,zero,randomize"`
	Seed          *uint64     `json:"seed,omitempty"`
	OutputFormat  string      `json:"output_format" enums:"png,bmp,tiff"`
	Compress      bool        `json:"compress"`
}

// Profile maps the request onto the settings used by the command line. Output images are always compressed as much
// as possible to reduce bandwidth.
func (r InsertImageRequest) Profile() config.Profile {
	return config.Profile{
		Bits:           r.Bits.toProfileBits(),
		RemainingBits:  r.RemainingBits,
		Seed:           r.Seed,
		OutputFormat:   r.OutputFormat,
		PngCompression: "best",
		Compress:       r.Compress,
	}
}

type InsertImageResponse struct {
	Image         []byte `json:"image"`
	OutputFormat  string `json:"output_format"`
	PayloadBytes  int    `json:"payload_bytes"`
	CapacityBytes int    `json:"capacity_bytes"`
}

type ExtractImageRequest struct {
	Image      []byte      `json:"image" binding:"required"`
	Bits       ChannelBits `json:"bits"`
	Decompress bool        `json:"decompress"`
}

func (r ExtractImageRequest) Profile() config.Profile {
	return config.Profile{Bits: r.Bits.toProfileBits(), Compress: r.Decompress}
}

type ExtractImageResponse struct {
	Data []byte `json:"data"`
}

type CapacityRequest struct {
	Image []byte      `json:"image" binding:"required"`
	Bits  ChannelBits `json:"bits"`
}

func (r CapacityRequest) Profile() config.Profile {
	return config.Profile{Bits: r.Bits.toProfileBits()}
}

type CapacityResponse struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	PixelFormat   string `json:"pixel_format"`
	CapacityBytes int    `json:"capacity_bytes"`
	CapacityHuman string `json:"capacity_human"`
}
