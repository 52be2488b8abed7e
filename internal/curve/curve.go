package curve

import "sort"

// Keyframe is one (frame, value) sample of a channel.
type Keyframe struct {
	Frame int
	Value float64
}

// Curve holds a channel's default value and its sparse frame→value mapping
// with strictly increasing frames.
type Curve struct {
	Default float64

	keys    []Keyframe
	started bool
	samples int
}

// Record stores v at frame. The first call also fixes Default; a repeated
// frame overwrites the earlier value.
func (c *Curve) Record(frame int, v float64) {
	if !c.started {
		c.Default = v
		c.started = true
	}
	c.samples++

	n := len(c.keys)
	if n == 0 || c.keys[n-1].Frame < frame {
		c.keys = append(c.keys, Keyframe{Frame: frame, Value: v})
		return
	}
	i := sort.Search(n, func(i int) bool { return c.keys[i].Frame >= frame })
	if c.keys[i].Frame == frame {
		c.keys[i].Value = v
		return
	}
	c.keys = append(c.keys, Keyframe{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = Keyframe{Frame: frame, Value: v}
}

// Keys returns a copy of the current keyframes in frame order.
func (c *Curve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len is the number of keyframes currently held.
func (c *Curve) Len() int {
	return len(c.keys)
}

// Samples counts every Record call, including overwrites.
func (c *Curve) Samples() int {
	return c.samples
}

// Reduce replaces the keys with their reduced form.
func (c *Curve) Reduce() {
	c.keys = Reduce(c.keys)
}
