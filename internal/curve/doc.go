// Package curve accumulates per-frame channel samples for tracked objects and
// reduces them to keyframes.
package curve
