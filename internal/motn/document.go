package motn

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ivlev/scene2motn/internal/curve"
	"github.com/ivlev/scene2motn/internal/scene"
)

const (
	prolog = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<!DOCTYPE ozxmlscene>\n"

	// FirstNodeID is the id of the first emitted object node.
	FirstNodeID = 10000

	factoryUUID      = "de1a9415beb34e5fb0964d1528bef14a"
	propertiesFlags  = "8589938704"
	keypointInterp   = "1"
	keypointFlags    = "32"
	curveTypeDefault = "1"
)

var groupIDs = map[curve.Group]string{
	curve.GroupPosition: "101",
	curve.GroupRotation: "109",
	curve.GroupScale:    "105",
}

var axisIDs = map[string]string{"X": "1", "Y": "2", "Z": "3"}

// Document is a serializable .motn scene built from reduced curves.
type Document struct {
	snapshot scene.Snapshot
	objects  []*curve.TrackedObject
}

// New returns a Document for objects, which are emitted in the given order.
// Neither the snapshot nor the objects are modified.
func New(snapshot scene.Snapshot, objects []*curve.TrackedObject) *Document {
	return &Document{snapshot: snapshot, objects: objects}
}

// Encode writes the complete document to w.
func (d *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, prolog); err != nil {
		return err
	}
	if err := d.Tree().Encode(bw); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if _, err := io.WriteString(bw, "\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// Tree builds the element tree under the ozml root.
func (d *Document) Tree() *Node {
	root := Elem("ozml", "version", "3.0")
	root.Add(factoryBlock(), viewerBlock())

	sceneNode := d.sceneBlock()
	id := FirstNodeID
	for _, obj := range d.objects {
		sceneNode.Add(objectNode(obj, id))
		id++
	}
	return root.Add(sceneNode)
}

func factoryBlock() *Node {
	return Elem("factory", "id", "1", "uuid", factoryUUID).Add(
		Elem("description").SetText("Camera"),
		Elem("manufacturer").SetText("Apple"),
		Elem("version").SetText("1"),
	)
}

func viewerBlock() *Node {
	return Elem("viewer", "subview", "0").Add(
		Elem("cameraType").SetText("0"),
		Elem("cameraName").SetText("Active Camera"),
		Elem("panZoom", "camera", "0", "zoom", "0.5", "panX", "236", "panY", "105", "mode", "1", "centered", "1"),
	)
}

func (d *Document) sceneBlock() *Node {
	s := d.snapshot
	ntsc := "0"
	if s.Rate.NTSC() {
		ntsc = "1"
	}
	duration := formatInt(s.End)

	settings := Elem("sceneSettings").Add(
		Elem("width").SetText(formatInt(s.Width())),
		Elem("height").SetText(formatInt(s.Height())),
		Elem("duration").SetText(duration),
		Elem("frameRate").SetText(formatInt(s.Rate.FPS)),
		Elem("fieldRenderingMode").SetText("0"),
		Elem("NTSC").SetText(ntsc),
		Elem("pixelAspectRatio").SetText("1"),
	)
	project := Elem("scenenode", "name", "Project", "id", "746135465", "factoryID", "12", "version", "5").Add(
		Elem("scenenode", "name", "Widget", "id", "746135466", "factoryID", "9", "version", "5"),
	)

	return Elem("scene").Add(
		settings,
		Elem("currentFrame").SetText("1"),
		Elem("timeRange", "offset", "0", "duration", duration),
		Elem("playRange", "offset", "0", "duration", duration),
		project,
	)
}

func objectNode(obj *curve.TrackedObject, id int) *Node {
	var node *Node
	if obj.IsCamera() {
		node = Elem("scenenode", "name", obj.Name, "id", formatInt(id), "factoryID", "1")
	} else {
		node = Elem("layer", "name", obj.Name, "id", formatInt(id))
	}

	transform := Elem("parameter", "name", "Transform", "id", "100")
	var group *Node
	for _, ch := range curve.TransformChannels {
		if group == nil || groupName(group) != ch.Group().String() {
			group = Elem("parameter", "name", ch.Group().String(), "id", groupIDs[ch.Group()])
			transform.Add(group)
		}
		group.Add(curveParameter(ch.Axis(), axisIDs[ch.Axis()], obj.Channels.Curve(ch)))
	}
	node.Add(Elem("parameter", "name", "Properties", "id", "1", "flags", propertiesFlags).Add(transform))

	object := Elem("parameter", "name", "Object", "id", "2")
	if obj.IsCamera() {
		object.Add(
			curveParameter("Angle Of View", "201", obj.Channels.Curve(curve.FieldOfView)),
			Elem("parameter", "name", "Camera Type", "id", "200", "default", "1", "value", "0"),
		)
	} else {
		object.Add(Elem("parameter", "name", "Type", "id", "307", "default", "0", "value", "1"))
	}
	return node.Add(object)
}

func groupName(n *Node) string {
	v, _ := n.Attribute("name")
	return v
}

func curveParameter(name, id string, c *curve.Curve) *Node {
	def := FormatFloat(c.Default)
	keys := c.Keys()

	body := Elem("curve", "type", curveTypeDefault).Add(
		Elem("numberOfKeypoints").SetText(formatInt(len(keys))),
	)
	for _, k := range keys {
		body.Add(Elem("keypoint", "interpolation", keypointInterp, "flags", keypointFlags).Add(
			Elem("time").SetText(formatInt(k.Frame-1)),
			Elem("value").SetText(FormatFloat(k.Value)),
		))
	}
	return Elem("parameter", "name", name, "id", id, "default", def, "value", def).Add(body)
}
