package scene

import "fmt"

// FrameGuard holds the host's current frame for the duration of an export and
// puts the original value back on Release.
type FrameGuard struct {
	host     Host
	original int
	released bool
}

// AcquireFrame captures the host's current frame.
func AcquireFrame(host Host) *FrameGuard {
	return &FrameGuard{host: host, original: host.CurrentFrame()}
}

// Original returns the frame captured at acquisition.
func (g *FrameGuard) Original() int {
	return g.original
}

// Release restores the captured frame. Calls after the first are no-ops.
func (g *FrameGuard) Release() error {
	if g.released {
		return nil
	}
	g.released = true
	if err := g.host.SetFrame(g.original); err != nil {
		return fmt.Errorf("restore frame %d: %w", g.original, err)
	}
	return nil
}
