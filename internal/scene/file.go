package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// defaultCameraAngle is the angle of view of a 50mm lens on a 36mm sensor.
const defaultCameraAngle = 0.6911112070083618

// SceneFile is the YAML layout of a scene description.
type SceneFile struct {
	Name                 string       `yaml:"name"`
	FrameStart           int          `yaml:"frame_start"`
	FrameEnd             int          `yaml:"frame_end"`
	FrameCurrent         *int         `yaml:"frame_current,omitempty"`
	FPS                  int          `yaml:"fps"`
	FPSBase              float64      `yaml:"fps_base,omitempty"`
	ResolutionX          int          `yaml:"resolution_x"`
	ResolutionY          int          `yaml:"resolution_y"`
	ResolutionPercentage int          `yaml:"resolution_percentage,omitempty"`
	PixelAspectX         float64      `yaml:"pixel_aspect_x,omitempty"`
	PixelAspectY         float64      `yaml:"pixel_aspect_y,omitempty"`
	Layers               []int        `yaml:"layers,omitempty"`
	Camera               string       `yaml:"camera"`
	Objects              []ObjectFile `yaml:"objects"`
}

// ObjectFile describes one object: its rest transform plus optional keys.
type ObjectFile struct {
	Name          string      `yaml:"name"`
	Type          string      `yaml:"type"`
	Layers        []int       `yaml:"layers,omitempty"`
	Interpolation string      `yaml:"interpolation,omitempty"`
	Location      *[3]float64 `yaml:"location,omitempty"`
	Rotation      *[3]float64 `yaml:"rotation,omitempty"`
	Scale         *[3]float64 `yaml:"scale,omitempty"`
	Angle         *float64    `yaml:"angle,omitempty"`
	Keys          []KeyFile   `yaml:"keys,omitempty"`
}

// KeyFile sets any subset of an object's properties at one frame.
type KeyFile struct {
	Frame    int         `yaml:"frame"`
	Location *[3]float64 `yaml:"location,omitempty"`
	Rotation *[3]float64 `yaml:"rotation,omitempty"`
	Scale    *[3]float64 `yaml:"scale,omitempty"`
	Angle    *float64    `yaml:"angle,omitempty"`
}

type objectTracks struct {
	object   Object
	location vecTrack
	rotation vecTrack
	scale    vecTrack
	angle    scalarTrack
}

// File is a Host backed by a YAML scene description. Transforms are evaluated
// from keyed location, XYZ euler rotation and scale at the current frame.
type File struct {
	path     string
	snapshot Snapshot
	camera   string
	visible  []Object
	tracks   map[string]*objectTracks
	current  int
}

// Load reads and parses a scene file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	f.path = path
	return f, nil
}

// Parse decodes a YAML scene description.
func Parse(r io.Reader) (*File, error) {
	var sf SceneFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scene document")
		}
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return NewFile(sf)
}

// NewFile builds a host from an already decoded description.
func NewFile(sf SceneFile) (*File, error) {
	applySceneDefaults(&sf)

	f := &File{
		snapshot: Snapshot{
			Name:                 sf.Name,
			Start:                sf.FrameStart,
			End:                  sf.FrameEnd,
			Rate:                 FrameRate{FPS: sf.FPS, Base: sf.FPSBase},
			ResolutionX:          sf.ResolutionX,
			ResolutionY:          sf.ResolutionY,
			ResolutionPercentage: sf.ResolutionPercentage,
			PixelAspectX:         sf.PixelAspectX,
			PixelAspectY:         sf.PixelAspectY,
		},
		camera:  sf.Camera,
		tracks:  make(map[string]*objectTracks, len(sf.Objects)),
		current: sf.FrameStart,
	}
	if sf.FrameCurrent != nil {
		f.current = *sf.FrameCurrent
	}

	for i, of := range sf.Objects {
		if of.Name == "" {
			return nil, fmt.Errorf("object %d: name is required", i)
		}
		if _, dup := f.tracks[of.Name]; dup {
			return nil, fmt.Errorf("object %q defined twice", of.Name)
		}
		ot, err := buildTracks(of)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", of.Name, err)
		}
		f.tracks[of.Name] = ot
		if onVisibleLayer(of.Layers, sf.Layers) {
			f.visible = append(f.visible, ot.object)
		}
	}
	return f, nil
}

func applySceneDefaults(sf *SceneFile) {
	if sf.FPS == 0 {
		sf.FPS = 24
	}
	if sf.FPSBase == 0 {
		sf.FPSBase = 1
	}
	if sf.ResolutionX == 0 {
		sf.ResolutionX = 1920
	}
	if sf.ResolutionY == 0 {
		sf.ResolutionY = 1080
	}
	if sf.ResolutionPercentage == 0 {
		sf.ResolutionPercentage = 100
	}
	if sf.PixelAspectX == 0 {
		sf.PixelAspectX = 1
	}
	if sf.PixelAspectY == 0 {
		sf.PixelAspectY = 1
	}
	if len(sf.Layers) == 0 {
		sf.Layers = []int{0}
	}
}

func buildTracks(of ObjectFile) (*objectTracks, error) {
	mode, err := parseInterpolation(of.Interpolation)
	if err != nil {
		return nil, err
	}

	ot := &objectTracks{
		object:   Object{Name: of.Name, Type: of.Type},
		location: vecTrack{mode: mode},
		rotation: vecTrack{mode: mode},
		scale:    vecTrack{base: [3]float64{1, 1, 1}, mode: mode},
		angle:    scalarTrack{vecTrack{base: [3]float64{defaultCameraAngle}, mode: mode}},
	}
	if of.Location != nil {
		ot.location.base = *of.Location
	}
	if of.Rotation != nil {
		ot.rotation.base = *of.Rotation
	}
	if of.Scale != nil {
		ot.scale.base = *of.Scale
	}
	if of.Angle != nil {
		ot.angle.base[0] = *of.Angle
	}

	seen := make(map[int]struct{}, len(of.Keys))
	for _, k := range of.Keys {
		if _, dup := seen[k.Frame]; dup {
			return nil, fmt.Errorf("frame %d keyed twice", k.Frame)
		}
		seen[k.Frame] = struct{}{}
		if k.Location != nil {
			ot.location.add(k.Frame, *k.Location)
		}
		if k.Rotation != nil {
			ot.rotation.add(k.Frame, *k.Rotation)
		}
		if k.Scale != nil {
			ot.scale.add(k.Frame, *k.Scale)
		}
		if k.Angle != nil {
			ot.angle.addScalar(k.Frame, *k.Angle)
		}
	}
	ot.location.sort()
	ot.rotation.sort()
	ot.scale.sort()
	ot.angle.sort()
	return ot, nil
}

func onVisibleLayer(objectLayers, sceneLayers []int) bool {
	if len(objectLayers) == 0 {
		objectLayers = []int{0}
	}
	for _, ol := range objectLayers {
		for _, sl := range sceneLayers {
			if ol == sl {
				return true
			}
		}
	}
	return false
}

// Path returns the file the scene was loaded from, if any.
func (f *File) Path() string {
	return f.path
}

func (f *File) Snapshot() (Snapshot, error) {
	return f.snapshot, nil
}

func (f *File) Objects() []Object {
	out := make([]Object, len(f.visible))
	copy(out, f.visible)
	return out
}

func (f *File) ActiveCamera() (string, bool) {
	return f.camera, f.camera != ""
}

func (f *File) CurrentFrame() int {
	return f.current
}

func (f *File) SetFrame(frame int) error {
	f.current = frame
	return nil
}

func (f *File) WorldMatrix(name string) (mgl64.Mat4, error) {
	ot, ok := f.tracks[name]
	if !ok {
		return mgl64.Mat4{}, fmt.Errorf("unknown object %q", name)
	}
	loc := ot.location.at(f.current)
	rot := ot.rotation.at(f.current)
	scl := ot.scale.at(f.current)
	return ComposeXYZ(loc, rot, scl), nil
}

func (f *File) CameraAngle(name string) (float64, error) {
	ot, ok := f.tracks[name]
	if !ok {
		return 0, fmt.Errorf("unknown object %q", name)
	}
	return ot.angle.atScalar(f.current), nil
}

// ComposeXYZ builds T · Rz·Ry·Rx · S, the world matrix of an unparented
// object with XYZ euler rotation.
func ComposeXYZ(loc, rot, scale [3]float64) mgl64.Mat4 {
	r := mgl64.HomogRotate3DZ(rot[2]).
		Mul4(mgl64.HomogRotate3DY(rot[1])).
		Mul4(mgl64.HomogRotate3DX(rot[0]))
	return mgl64.Translate3D(loc[0], loc[1], loc[2]).
		Mul4(r).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}
