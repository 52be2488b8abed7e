package curve

// Reduce removes redundant interior samples from a full per-frame mapping.
//
// It makes one pass in frame order with a two-value history. Whenever the
// current value equals both previous values, the key one frame back is
// dropped. At the third key the key two frames back is dropped as well, and at
// the last key the key itself is dropped, so constant runs touching either
// end of the range collapse. Dropping a frame that is already gone is a no-op.
// If nothing would survive, the first key is kept.
func Reduce(keys []Keyframe) []Keyframe {
	if len(keys) == 0 {
		return nil
	}

	dropped := make(map[int]struct{})
	var prev1, prev2 float64
	var have1, have2 bool
	last := len(keys) - 1

	for i, k := range keys {
		if have1 && have2 && k.Value == prev1 && k.Value == prev2 {
			dropped[k.Frame-1] = struct{}{}
			if i == 2 {
				dropped[k.Frame-2] = struct{}{}
			}
			if i == last {
				dropped[k.Frame] = struct{}{}
			}
		}
		prev2, have2 = prev1, have1
		prev1, have1 = k.Value, true
	}

	out := make([]Keyframe, 0, len(keys))
	for _, k := range keys {
		if _, ok := dropped[k.Frame]; !ok {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		out = append(out, keys[0])
	}
	return out
}
