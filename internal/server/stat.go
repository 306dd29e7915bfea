package server

import (
	"github.com/dustin/go-humanize"

	"blindsteg/pkg/model"
)

type humanizedInsertStats struct {
	model.InsertStats
	SetupHuman               string `json:"setup_human"`
	DataInsertionHuman       string `json:"data_insertion_human"`
	OutputImageEncodingHuman string `json:"output_image_encoding_human"`
	PayloadHuman             string `json:"payload_human"`
	CapacityHuman            string `json:"capacity_human"`
}

type humanizedExtractStats struct {
	model.ExtractStats
	DataExtractionHuman string `json:"data_extraction_human"`
	PayloadHuman        string `json:"payload_human"`
}

func toHumanizedInsertStats(insertStats model.InsertStats) humanizedInsertStats {
	return humanizedInsertStats{
		InsertStats:              insertStats,
		SetupHuman:               insertStats.Setup.String(),
		DataInsertionHuman:       insertStats.DataInsertion.String(),
		OutputImageEncodingHuman: insertStats.OutputImageEncoding.String(),
		PayloadHuman:             humanize.Bytes(uint64(insertStats.PayloadBytes)),
		CapacityHuman:            humanize.Bytes(uint64(insertStats.CapacityBytes)),
	}
}

func toHumanizedExtractStats(extractStats model.ExtractStats) humanizedExtractStats {
	return humanizedExtractStats{
		ExtractStats:        extractStats,
		DataExtractionHuman: extractStats.DataExtraction.String(),
		PayloadHuman:        humanize.Bytes(uint64(extractStats.PayloadBytes)),
	}
}
