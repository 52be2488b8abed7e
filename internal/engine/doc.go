// Package engine orchestrates an export: it validates the scene, samples
// every tracked object across the frame range, reduces the curves, applies
// the static object cap and writes the document.
//
// Only one export may drive a host at a time. Export holds a lock file in
// the output directory for its duration and restores the host's current
// frame on every exit path.
package engine
