package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/ivlev/scene2motn/internal/config"
	"github.com/ivlev/scene2motn/internal/curve"
	"github.com/ivlev/scene2motn/internal/logging"
	"github.com/ivlev/scene2motn/internal/motn"
	"github.com/ivlev/scene2motn/internal/sampler"
	"github.com/ivlev/scene2motn/internal/scene"
	"github.com/ivlev/scene2motn/internal/system"
)

// Extension is appended to output paths that lack it.
const Extension = ".motn"

// Exporter drives one scene host through a full export.
type Exporter struct {
	Config *config.Config
	Host   scene.Host
	Logger *slog.Logger
}

// NewExporter returns an Exporter. A nil logger discards output.
func NewExporter(cfg *config.Config, host scene.Host, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Exporter{Config: cfg, Host: host, Logger: logger}
}

// ObjectSummary describes one tracked object after reduction.
type ObjectSummary struct {
	Name    string
	Source  string
	Type    string
	Role    curve.Role
	Static  bool
	Skipped bool
	Samples int
	// Keys counts retained keyframes per channel group.
	Keys map[curve.Group]int
}

// TotalKeys is the number of keyframes retained across all groups.
func (s ObjectSummary) TotalKeys() int {
	n := 0
	for _, k := range s.Keys {
		n += k
	}
	return n
}

// Timings records how long each export stage took.
type Timings struct {
	Sample time.Duration
	Reduce time.Duration
	Write  time.Duration
	Total  time.Duration
}

// Result reports what an export or plan produced.
type Result struct {
	ExportID      string
	OutputPath    string
	Destination   config.Destination
	Snapshot      scene.Snapshot
	Objects       []ObjectSummary
	Warnings      []string
	Samples       int
	Keys          int
	DocumentBytes int64
	Timings       Timings
}

// Frames is the number of sampled frames.
func (r *Result) Frames() int {
	return r.Snapshot.Frames()
}

// Written counts the objects emitted into the document.
func (r *Result) Written() int {
	n := 0
	for _, o := range r.Objects {
		if !o.Skipped {
			n++
		}
	}
	return n
}

// Export samples the scene, reduces every curve and writes the document to
// outputPath (with .motn appended when missing). The host's current frame is
// restored before Export returns.
func (e *Exporter) Export(ctx context.Context, outputPath string) (*Result, error) {
	start := time.Now()
	path := system.EnsureExtension(outputPath, Extension)

	in, err := e.prepare()
	if err != nil {
		return nil, err
	}
	lock, err := acquireLock(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			e.Logger.Warn("failed to release export lock", logging.Error(err))
		}
	}()

	res, doc, err := e.build(ctx, in)
	if err != nil {
		return nil, err
	}
	res.OutputPath = path
	logger := e.Logger.With(logging.String(logging.FieldExportID, res.ExportID))

	writeStart := time.Now()
	var counter countingWriter
	err = system.WriteFileAtomic(path, func(w io.Writer) error {
		counter.w = w
		return doc.Encode(&counter)
	})
	if err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	res.DocumentBytes = counter.n
	res.Timings.Write = time.Since(writeStart)
	res.Timings.Total = time.Since(start)

	logger.Info("export complete",
		logging.String("path", path),
		logging.Int("frames", res.Frames()),
		logging.Int("objects", res.Written()),
		logging.Int("keys", res.Keys),
		logging.Duration("elapsed", res.Timings.Total),
	)
	return res, nil
}

// Plan runs the export without writing anything. DocumentBytes holds the
// size the document would have.
func (e *Exporter) Plan(ctx context.Context) (*Result, error) {
	start := time.Now()
	in, err := e.prepare()
	if err != nil {
		return nil, err
	}
	res, doc, err := e.build(ctx, in)
	if err != nil {
		return nil, err
	}

	buf := system.GetBuffer()
	defer system.PutBuffer(buf)
	if err := doc.Encode(buf); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	res.DocumentBytes = int64(buf.Len())
	res.Timings.Total = time.Since(start)
	return res, nil
}

// exportInput is the validated scene state an export starts from.
type exportInput struct {
	snap    scene.Snapshot
	objects []scene.Object
	camera  string
}

// prepare runs the fatal scene checks. It touches neither the host frame nor
// the filesystem.
func (e *Exporter) prepare() (*exportInput, error) {
	if e.Config == nil || e.Host == nil {
		return nil, errors.New("exporter requires a config and a host")
	}

	snap, err := e.Host.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	if snap.End < snap.Start {
		return nil, fmt.Errorf("%w: frames %d..%d", ErrEmptyFrameRange, snap.Start, snap.End)
	}

	objects := e.Host.Objects()
	cameraName, ok := e.Host.ActiveCamera()
	if !ok || !containsObject(objects, cameraName) {
		return nil, ErrMissingCamera
	}
	return &exportInput{snap: snap, objects: objects, camera: cameraName}, nil
}

func (e *Exporter) build(ctx context.Context, in *exportInput) (*Result, *motn.Document, error) {
	snap := in.snap
	dest := e.Config.Destination()
	res := &Result{
		ExportID:    uuid.NewString(),
		Destination: dest,
		Snapshot:    snap,
	}
	logger := e.Logger.With(logging.String(logging.FieldExportID, res.ExportID))
	logger.Info("export started",
		logging.String("scene", snap.Name),
		logging.String("destination", dest.String()),
		logging.Int("frame_start", snap.Start),
		logging.Int("frame_end", snap.End),
	)

	acc := curve.NewAccumulator()
	warn := func(msg string, attrs ...logging.Attr) {
		res.Warnings = append(res.Warnings, msg)
		logger.Warn(msg, logging.Args(attrs...)...)
	}
	e.track(acc, in.objects, in.camera, warn)

	sampleStart := time.Now()
	if err := e.sample(ctx, acc, snap, sampler.New(dest.Scale())); err != nil {
		return nil, nil, err
	}
	res.Timings.Sample = time.Since(sampleStart)

	reduceStart := time.Now()
	if err := acc.Reduce(ctx); err != nil {
		return nil, nil, fmt.Errorf("reduce curves: %w", err)
	}
	res.Timings.Reduce = time.Since(reduceStart)

	written := e.capStatic(acc.Objects(), dest, res, warn)
	return res, motn.New(snap, written), nil
}

// track registers objects in enumeration order. The camera's normalized name
// is reserved up front, so a generic object that normalizes to it is skipped
// wherever it appears.
func (e *Exporter) track(acc *curve.Accumulator, objects []scene.Object, cameraName string, warn func(string, ...logging.Attr)) {
	reserved := scene.NormalizeName(cameraName)
	for _, obj := range objects {
		var err error
		switch {
		case obj.Name == cameraName:
			_, err = acc.Track(obj.Name, obj.Type, curve.RoleCamera)
		case !e.Config.WantsType(obj.Type):
			continue
		case scene.NormalizeName(obj.Name) == reserved:
			err = &CollisionError{Name: reserved, Source: obj.Name, Existing: cameraName}
		default:
			_, err = acc.Track(obj.Name, obj.Type, curve.RoleGeneric)
		}
		if err != nil {
			warn(err.Error(), logging.String(logging.FieldObject, obj.Name), logging.Error(err))
		}
	}
}

func (e *Exporter) sample(ctx context.Context, acc *curve.Accumulator, snap scene.Snapshot, smp sampler.Sampler) (err error) {
	guard := scene.AcquireFrame(e.Host)
	defer func() {
		if rerr := guard.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	tracked := acc.Objects()
	for frame := snap.Start; frame <= snap.End; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.Host.SetFrame(frame); err != nil {
			return fmt.Errorf("set frame %d: %w", frame, err)
		}
		for _, obj := range tracked {
			s, err := e.sampleObject(obj, smp)
			if err != nil {
				return fmt.Errorf("sample %s at frame %d: %w", obj.Source, frame, err)
			}
			record(acc, obj, frame, s)
		}
	}
	return nil
}

func (e *Exporter) sampleObject(obj *curve.TrackedObject, smp sampler.Sampler) (sampler.Sample, error) {
	world, err := e.Host.WorldMatrix(obj.Source)
	if err != nil {
		return sampler.Sample{}, err
	}
	if !obj.IsCamera() {
		return smp.Object(world), nil
	}
	angle, err := e.Host.CameraAngle(obj.Source)
	if err != nil {
		return sampler.Sample{}, err
	}
	return smp.Camera(world, angle), nil
}

func record(acc *curve.Accumulator, obj *curve.TrackedObject, frame int, s sampler.Sample) {
	for i := 0; i < 3; i++ {
		acc.Record(obj, curve.TranslateX+curve.Channel(i), frame, s.Translate[i])
		acc.Record(obj, curve.RotateX+curve.Channel(i), frame, s.Rotate[i])
		acc.Record(obj, curve.ScaleX+curve.Channel(i), frame, s.Scale[i])
	}
	if s.HasFOV {
		acc.Record(obj, curve.FieldOfView, frame, s.FieldOfView)
	}
}

// capStatic summarizes every object and drops static generic objects past
// the configured limit when the destination caps them.
func (e *Exporter) capStatic(objects []*curve.TrackedObject, dest config.Destination, res *Result, warn func(string, ...logging.Attr)) []*curve.TrackedObject {
	written := make([]*curve.TrackedObject, 0, len(objects))
	statics := 0
	for _, obj := range objects {
		summary := summarize(obj)
		if summary.Static && !obj.IsCamera() && dest.CapsStatic() {
			statics++
			if statics > e.Config.Export.MaxStatic {
				summary.Skipped = true
				warn(fmt.Sprintf("static object %q skipped: more than %d static objects", obj.Source, e.Config.Export.MaxStatic),
					logging.String(logging.FieldObject, obj.Source))
			}
		}
		res.Objects = append(res.Objects, summary)
		if summary.Skipped {
			continue
		}
		res.Samples += summary.Samples
		res.Keys += summary.TotalKeys()
		written = append(written, obj)
	}
	return written
}

func summarize(obj *curve.TrackedObject) ObjectSummary {
	s := ObjectSummary{
		Name:   obj.Name,
		Source: obj.Source,
		Type:   obj.Type,
		Role:   obj.Role,
		Static: obj.Static(),
		Keys:   make(map[curve.Group]int, 4),
	}
	for _, ch := range obj.Channels.Channels() {
		c := obj.Channels.Curve(ch)
		s.Samples += c.Samples()
		s.Keys[ch.Group()] += c.Len()
	}
	return s
}

func containsObject(objects []scene.Object, name string) bool {
	for _, o := range objects {
		if o.Name == name {
			return true
		}
	}
	return false
}

func acquireLock(path string) (*flock.Flock, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{Path: path, Err: err}
	}
	lock := flock.New(filepath.Join(dir, ".scene2motn.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrExportInProgress
	}
	return lock, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
