// Package perspective resamples a source image into a destination image
// under an angle-controlled foreshortening warp.
//
// Pixels are kept in a Buffer of packed ARGB values. Transform maps every
// destination pixel back into the source and samples it with one of two
// methods, NearestNeighbor or Bilinear. Coordinates that fall outside the
// source are filled with opaque white.
package perspective

import (
	"strings"

	"github.com/akeil/perspective/internal/logging"
)

// SetLogLevel sets the log level by name.
// Valid names are "debug", "info", "warning" and "error",
// anything else disables logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}

// Method selects the sampling strategy used by Transform.
type Method int

const (
	NearestNeighbor Method = iota
	Bilinear
)

var methodNames = map[Method]string{
	NearestNeighbor: "nearest",
	Bilinear:        "bilinear",
}

func (m Method) String() string {
	name, ok := methodNames[m]
	if !ok {
		return "unknown"
	}
	return name
}

// Validate returns an error if m is not one of the known methods.
func (m Method) Validate() error {
	if _, ok := methodNames[m]; !ok {
		return NewValidationError("invalid sampling method %d", int(m))
	}
	return nil
}

// ParseMethod looks up a Method by name.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "nn", "nearest-neighbor", "nearest-neighbour":
		return NearestNeighbor, nil
	case "bilinear", "linear":
		return Bilinear, nil
	}
	return NearestNeighbor, NewValidationError("unknown sampling method %q", s)
}
