package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a reusable set of insert/extract settings stored as YAML. Unset keys keep their defaults.
//
//	bits:
//	  red: 2
//	  green: 2
//	  blue: 2
//	remaining_bits: randomize
//	seed: 4
//	output_format: png
//	png_compression: best
//	compress: true
type Profile struct {
	Bits           ProfileBits `yaml:"bits"`
	RemainingBits  string      `yaml:"remaining_bits"`
	Seed           *uint64     `yaml:"seed"`
	OutputFormat   string      `yaml:"output_format"`
	PngCompression string      `yaml:"png_compression"`
	Compress       bool        `yaml:"compress"`
}

type ProfileBits struct {
	Red   *int `yaml:"red"`
	Green *int `yaml:"green"`
	Blue  *int `yaml:"blue"`
	Alpha *int `yaml:"alpha"`
}

func LoadProfile(path string) (Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(raw)
}

func ParseProfile(raw []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	if _, err := p.ChannelBits(); err != nil {
		return Profile{}, err
	}
	if _, err := p.remainingBitsAction(); err != nil {
		return Profile{}, err
	}
	if p.OutputFormat != "" {
		if _, err := ParseOutputFormat(p.OutputFormat); err != nil {
			return Profile{}, err
		}
	}
	return p, nil
}

func (p Profile) ChannelBits() (ChannelBits, error) {
	bits := DefaultChannelBits()
	for _, field := range []struct {
		value *int
		dest  *BitWidth
	}{
		{p.Bits.Red, &bits.Red},
		{p.Bits.Green, &bits.Green},
		{p.Bits.Blue, &bits.Blue},
		{p.Bits.Alpha, &bits.Alpha},
	} {
		if field.value == nil {
			continue
		}
		w, err := BitWidthFromCount(*field.value)
		if err != nil {
			return ChannelBits{}, err
		}
		*field.dest = w
	}
	return bits, nil
}

func (p Profile) InsertConfig() (InsertConfig, error) {
	bits, err := p.ChannelBits()
	if err != nil {
		return InsertConfig{}, err
	}
	action, err := p.remainingBitsAction()
	if err != nil {
		return InsertConfig{}, err
	}
	return InsertConfig{Bits: bits, RemainingBits: action}, nil
}

func (p Profile) ExtractConfig() (ExtractConfig, error) {
	bits, err := p.ChannelBits()
	if err != nil {
		return ExtractConfig{}, err
	}
	return ExtractConfig{Bits: bits}, nil
}

func (p Profile) OutputConfig() (OutputConfig, error) {
	out := DefaultOutputConfig()
	if p.OutputFormat != "" {
		format, err := ParseOutputFormat(p.OutputFormat)
		if err != nil {
			return OutputConfig{}, err
		}
		out.Format = format
	}
	if p.PngCompression != "" {
		out.PngCompressionLevel = ParsePngCompression(p.PngCompression)
	}
	return out, nil
}

func (p Profile) remainingBitsAction() (RemainingBitsAction, error) {
	action, err := ParseRemainingBitsAction(p.RemainingBits)
	if err != nil {
		return RemainingBitsAction{}, err
	}
	if action.Kind == RemainingBitsRandomize && p.Seed != nil {
		action = RandomizeRemainingBits(*p.Seed)
	}
	return action, nil
}
