package model

import (
	"time"
)

type InsertStats struct {
	Setup               time.Duration `json:"setup"`
	DataInsertion       time.Duration `json:"data_insertion"`
	OutputImageEncoding time.Duration `json:"output_image_encoding"`
	PayloadBytes        int           `json:"payload_bytes"`
	CapacityBytes       int           `json:"capacity_bytes"`
}

type ExtractStats struct {
	DataExtraction time.Duration `json:"data_extraction"`
	PayloadBytes   int           `json:"payload_bytes"`
}
