package soal

import (
	"fmt"
	"strings"
)

// Dimension identifies one of the four learning-style axes.
type Dimension int

const (
	// DimensionProcessing is the active/reflective axis.
	DimensionProcessing Dimension = iota
	// DimensionPerception is the sensing/intuitive axis.
	DimensionPerception
	// DimensionInput is the visual/verbal axis.
	DimensionInput
	// DimensionUnderstanding is the sequential/global axis.
	DimensionUnderstanding
)

// Dimensions lists every dimension in display order.
var Dimensions = [...]Dimension{
	DimensionProcessing,
	DimensionPerception,
	DimensionInput,
	DimensionUnderstanding,
}

var dimensionNames = [...]string{
	DimensionProcessing:    "processing",
	DimensionPerception:    "perception",
	DimensionInput:         "input",
	DimensionUnderstanding: "understanding",
}

var dimensionLabels = [...]string{
	DimensionProcessing:    "Pemrosesan",
	DimensionPerception:    "Persepsi",
	DimensionInput:         "Input",
	DimensionUnderstanding: "Pemahaman",
}

// dimensionAliases maps every accepted lower-case name to its dimension.
var dimensionAliases = map[string]Dimension{
	"processing":    DimensionProcessing,
	"pemrosesan":    DimensionProcessing,
	"perception":    DimensionPerception,
	"persepsi":      DimensionPerception,
	"input":         DimensionInput,
	"understanding": DimensionUnderstanding,
	"pemahaman":     DimensionUnderstanding,
}

// ParseDimension resolves a dimension name case-insensitively.
func ParseDimension(name string) (Dimension, bool) {
	dim, ok := dimensionAliases[strings.ToLower(strings.TrimSpace(name))]
	return dim, ok
}

// Valid reports whether d is one of the known dimensions.
func (d Dimension) Valid() bool {
	return d >= DimensionProcessing && d <= DimensionUnderstanding
}

// String returns the canonical English name.
func (d Dimension) String() string {
	if !d.Valid() {
		return fmt.Sprintf("dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// Label returns the Indonesian display label used by the platform.
func (d Dimension) Label() string {
	if !d.Valid() {
		return d.String()
	}
	return dimensionLabels[d]
}

// MarshalText encodes the dimension by name so it can key JSON objects.
func (d Dimension) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid dimension %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a dimension name.
func (d *Dimension) UnmarshalText(text []byte) error {
	dim, ok := ParseDimension(string(text))
	if !ok {
		return fmt.Errorf("unknown dimension %q", string(text))
	}
	*d = dim
	return nil
}
