package curve

import "fmt"

// Channel is one scalar animated attribute of a tracked object.
type Channel int

const (
	TranslateX Channel = iota
	TranslateY
	TranslateZ
	RotateX
	RotateY
	RotateZ
	ScaleX
	ScaleY
	ScaleZ
	// FieldOfView exists only on the camera.
	FieldOfView

	channelCount
)

var channelNames = [channelCount]string{
	"translateX", "translateY", "translateZ",
	"rotateX", "rotateY", "rotateZ",
	"scaleX", "scaleY", "scaleZ",
	"fieldOfView",
}

// TransformChannels lists the nine channels every object carries, in
// document order.
var TransformChannels = []Channel{
	TranslateX, TranslateY, TranslateZ,
	RotateX, RotateY, RotateZ,
	ScaleX, ScaleY, ScaleZ,
}

func (c Channel) String() string {
	if c < 0 || c >= channelCount {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// Group is the parameter wrapper a channel is emitted under.
type Group int

const (
	GroupPosition Group = iota
	GroupRotation
	GroupScale
	GroupObject
)

func (g Group) String() string {
	switch g {
	case GroupPosition:
		return "Position"
	case GroupRotation:
		return "Rotation"
	case GroupScale:
		return "Scale"
	default:
		return "Object"
	}
}

// Group returns the wrapper for c.
func (c Channel) Group() Group {
	switch {
	case c <= TranslateZ:
		return GroupPosition
	case c <= RotateZ:
		return GroupRotation
	case c <= ScaleZ:
		return GroupScale
	default:
		return GroupObject
	}
}

// Axis returns "X", "Y" or "Z" for transform channels and "" otherwise.
func (c Channel) Axis() string {
	if c < TranslateX || c > ScaleZ {
		return ""
	}
	return [...]string{"X", "Y", "Z"}[int(c)%3]
}
