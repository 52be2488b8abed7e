// Package scene defines the host scene interface an export reads from and
// ships a YAML-backed implementation of it.
//
// A Host exposes the frame range, render settings, the objects on visible
// layers, the active camera, and per-frame world matrices. Its current frame
// is shared mutable state; FrameGuard captures it before sampling and
// restores it afterwards.
package scene
