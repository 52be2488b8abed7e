package curve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveRecord(t *testing.T) {
	var c Curve
	c.Record(3, 30)
	c.Record(1, 10)
	c.Record(2, 20)
	c.Record(5, 50)
	c.Record(2, 22)

	assert.Equal(t, 30.0, c.Default, "default is the first recorded value")
	assert.Equal(t, []Keyframe{{1, 10}, {2, 22}, {3, 30}, {5, 50}}, c.Keys())
	assert.Equal(t, 5, c.Samples())
	assert.Equal(t, 4, c.Len())
}

func TestCurveReduceKeepsDefault(t *testing.T) {
	var c Curve
	for f := 1; f <= 3; f++ {
		c.Record(f, 4.25)
	}
	c.Reduce()
	assert.Equal(t, 4.25, c.Default)
	assert.Equal(t, []Keyframe{{1, 4.25}}, c.Keys())
}

func TestChannelMetadata(t *testing.T) {
	tests := []struct {
		ch    Channel
		name  string
		group Group
		axis  string
	}{
		{TranslateX, "translateX", GroupPosition, "X"},
		{TranslateZ, "translateZ", GroupPosition, "Z"},
		{RotateY, "rotateY", GroupRotation, "Y"},
		{ScaleX, "scaleX", GroupScale, "X"},
		{ScaleZ, "scaleZ", GroupScale, "Z"},
		{FieldOfView, "fieldOfView", GroupObject, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.ch.String())
			assert.Equal(t, tt.group, tt.ch.Group())
			assert.Equal(t, tt.axis, tt.ch.Axis())
		})
	}
	assert.Equal(t, "Channel(42)", Channel(42).String())
}

func TestAccumulatorTrack(t *testing.T) {
	acc := NewAccumulator()

	cam, err := acc.Track("Camera.001", "CAMERA", RoleCamera)
	require.NoError(t, err)
	assert.Equal(t, "Camera_001", cam.Name)
	assert.True(t, cam.IsCamera())
	assert.Len(t, cam.Channels.Channels(), 10)

	empty, err := acc.Track("Empty", "EMPTY", RoleGeneric)
	require.NoError(t, err)
	assert.Len(t, empty.Channels.Channels(), 9)
	assert.Nil(t, empty.Channels.Curve(FieldOfView))

	_, err = acc.Track("Camera_001", "EMPTY", RoleGeneric)
	var collision *CollisionError
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "Camera.001", collision.Existing)
	assert.Equal(t, "Camera_001", collision.Source)

	objs := acc.Objects()
	require.Len(t, objs, 2)
	assert.Same(t, cam, objs[0])
	assert.Same(t, empty, objs[1])

	found, ok := acc.Lookup("Empty")
	assert.True(t, ok)
	assert.Same(t, empty, found)
}

func TestAccumulatorRecordAndReduce(t *testing.T) {
	acc := NewAccumulator()
	cam, err := acc.Track("Camera", "CAMERA", RoleCamera)
	require.NoError(t, err)
	prop, err := acc.Track("Prop", "MESH", RoleGeneric)
	require.NoError(t, err)

	for f := 1; f <= 5; f++ {
		for _, ch := range TransformChannels {
			if ch != TranslateX {
				acc.Record(cam, ch, f, 0)
			}
			acc.Record(prop, ch, f, 1)
		}
		acc.Record(cam, TranslateX, f, float64(f))
		acc.Record(cam, FieldOfView, f, 39.6)
		acc.Record(prop, FieldOfView, f, 12) // ignored
	}

	require.NoError(t, acc.Reduce(context.Background()))

	assert.Equal(t, 5, cam.Channels.Curve(TranslateX).Len())
	assert.Equal(t, 1.0, cam.Channels.Curve(TranslateX).Default)
	assert.Equal(t, 1, cam.Channels.Curve(FieldOfView).Len())
	assert.False(t, cam.Static())
	for _, ch := range TransformChannels {
		assert.LessOrEqual(t, prop.Channels.Curve(ch).Len(), 2, ch.String())
	}
	assert.True(t, prop.Static())
}

func TestAccumulatorReduceHonoursCancelledContext(t *testing.T) {
	acc := NewAccumulator()
	_, err := acc.Track("A", "EMPTY", RoleGeneric)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, acc.Reduce(ctx), context.Canceled)
}
