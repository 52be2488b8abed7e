package scene

import (
	"fmt"
	"sort"
	"strings"
)

// Interpolation selects how property values are filled in between keys.
type Interpolation int

const (
	InterpolationLinear Interpolation = iota
	InterpolationEase
	InterpolationConstant
)

func parseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return InterpolationLinear, nil
	case "ease", "bezier":
		return InterpolationEase, nil
	case "constant":
		return InterpolationConstant, nil
	default:
		return 0, fmt.Errorf("unknown interpolation %q", s)
	}
}

type vecKey struct {
	frame int
	value [3]float64
}

// vecTrack is one keyed vector property of an object.
type vecTrack struct {
	base [3]float64
	keys []vecKey
	mode Interpolation
}

func (t *vecTrack) add(frame int, v [3]float64) {
	t.keys = append(t.keys, vecKey{frame: frame, value: v})
}

func (t *vecTrack) sort() {
	sort.SliceStable(t.keys, func(i, j int) bool { return t.keys[i].frame < t.keys[j].frame })
}

// at evaluates the track at frame, holding the first and last keys outside
// the keyed range.
func (t *vecTrack) at(frame int) [3]float64 {
	if len(t.keys) == 0 {
		return t.base
	}
	if frame <= t.keys[0].frame {
		return t.keys[0].value
	}
	last := t.keys[len(t.keys)-1]
	if frame >= last.frame {
		return last.value
	}

	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i].frame > frame })
	prev, next := t.keys[i-1], t.keys[i]
	f := t.factor(frame, prev.frame, next.frame)
	var out [3]float64
	for c := range out {
		out[c] = lerp(prev.value[c], next.value[c], f)
	}
	return out
}

func (t *vecTrack) factor(frame, from, to int) float64 {
	if to == from {
		return 0
	}
	f := float64(frame-from) / float64(to-from)
	switch t.mode {
	case InterpolationConstant:
		return 0
	case InterpolationEase:
		return easeInOutCubic(f)
	default:
		return f
	}
}

// scalarTrack reuses vecTrack storage for single-valued properties.
type scalarTrack struct {
	vecTrack
}

func (t *scalarTrack) addScalar(frame int, v float64) {
	t.add(frame, [3]float64{v})
}

func (t *scalarTrack) atScalar(frame int) float64 {
	return t.at(frame)[0]
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeInOutCubic applies smooth easing function
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - pow(-2*t+2, 3)/2
}

// pow calculates x^n
func pow(x float64, n int) float64 {
	result := 1.0
	for i := 0; i < n; i++ {
		result *= x
	}
	return result
}
