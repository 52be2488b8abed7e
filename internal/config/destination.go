package config

import (
	"fmt"
	"strings"
)

// Destination identifies the application the exported document is tuned for.
// It changes the translation scale and the static tracker cap, never the
// document structure.
type Destination int

const (
	DestinationAE Destination = iota
	DestinationShake
	DestinationMaya
)

// ParseDestination accepts AE, SHAKE or MAYA in any case.
func ParseDestination(s string) (Destination, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AE", "AFTERFX":
		return DestinationAE, nil
	case "SHAKE":
		return DestinationShake, nil
	case "MAYA":
		return DestinationMaya, nil
	default:
		return 0, fmt.Errorf("unknown destination %q (want AE, SHAKE or MAYA)", s)
	}
}

// Scale is the multiplier applied to every translation component.
func (d Destination) Scale() float64 {
	if d == DestinationAE {
		return 100
	}
	return 1
}

// CapsStatic reports whether the static-object export cap applies.
func (d Destination) CapsStatic() bool {
	return d != DestinationMaya
}

func (d Destination) String() string {
	switch d {
	case DestinationAE:
		return "AE"
	case DestinationShake:
		return "SHAKE"
	case DestinationMaya:
		return "MAYA"
	default:
		return fmt.Sprintf("Destination(%d)", int(d))
	}
}
