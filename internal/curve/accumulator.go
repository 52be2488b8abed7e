package curve

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/scene2motn/internal/scene"
)

// Role distinguishes the designated camera from every other object. It is
// decided once, when the object is tracked.
type Role int

const (
	RoleGeneric Role = iota
	RoleCamera
)

func (r Role) String() string {
	if r == RoleCamera {
		return "camera"
	}
	return "generic"
}

// ChannelSet is the fixed table of curves owned by one object.
type ChannelSet struct {
	curves [channelCount]Curve
	hasFOV bool
}

// Curve returns the curve for ch, or nil when the object has no such channel.
func (s *ChannelSet) Curve(ch Channel) *Curve {
	if ch < 0 || ch >= channelCount || (ch == FieldOfView && !s.hasFOV) {
		return nil
	}
	return &s.curves[ch]
}

// Channels lists the channels present in document order.
func (s *ChannelSet) Channels() []Channel {
	out := append([]Channel(nil), TransformChannels...)
	if s.hasFOV {
		out = append(out, FieldOfView)
	}
	return out
}

// TrackedObject is one object being exported.
type TrackedObject struct {
	// Name is the normalized identifier written to the document.
	Name string
	// Source is the host object name.
	Source   string
	Type     string
	Role     Role
	Channels *ChannelSet
}

// IsCamera reports whether o is the designated camera.
func (o *TrackedObject) IsCamera() bool {
	return o.Role == RoleCamera
}

// Static reports whether no transform channel holds more than one key.
func (o *TrackedObject) Static() bool {
	for _, ch := range TransformChannels {
		if o.Channels.Curve(ch).Len() > 1 {
			return false
		}
	}
	return true
}

// CollisionError reports two host objects that normalize to the same name.
type CollisionError struct {
	Name     string
	Source   string
	Existing string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("object %q normalizes to %q, already used by %q", e.Source, e.Name, e.Existing)
}

// Accumulator owns the curves of every tracked object for one export.
type Accumulator struct {
	objects []*TrackedObject
	byName  map[string]*TrackedObject
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{byName: make(map[string]*TrackedObject)}
}

// Track registers a host object. When its normalized name is taken the
// object is not tracked and a *CollisionError is returned.
func (a *Accumulator) Track(source, objType string, role Role) (*TrackedObject, error) {
	name := scene.NormalizeName(source)
	if existing, ok := a.byName[name]; ok {
		return nil, &CollisionError{Name: name, Source: source, Existing: existing.Source}
	}
	obj := &TrackedObject{
		Name:     name,
		Source:   source,
		Type:     objType,
		Role:     role,
		Channels: &ChannelSet{hasFOV: role == RoleCamera},
	}
	a.objects = append(a.objects, obj)
	a.byName[name] = obj
	return obj, nil
}

// Record stores one sample. Samples for a channel the object lacks are ignored.
func (a *Accumulator) Record(obj *TrackedObject, ch Channel, frame int, v float64) {
	if c := obj.Channels.Curve(ch); c != nil {
		c.Record(frame, v)
	}
}

// Objects returns the tracked objects in enumeration order.
func (a *Accumulator) Objects() []*TrackedObject {
	return append([]*TrackedObject(nil), a.objects...)
}

// Lookup finds a tracked object by normalized name.
func (a *Accumulator) Lookup(name string) (*TrackedObject, bool) {
	obj, ok := a.byName[name]
	return obj, ok
}

// Reduce reduces every channel of every object. Objects are processed
// concurrently; channels never share state.
func (a *Accumulator) Reduce(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, obj := range a.objects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, ch := range obj.Channels.Channels() {
				obj.Channels.Curve(ch).Reduce()
			}
			return nil
		})
	}
	return g.Wait()
}
