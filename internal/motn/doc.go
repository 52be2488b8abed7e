// Package motn builds and serializes Apple Motion (ozml 3.0) scene documents
// from reduced keyframe curves.
package motn
