// Package gesture classifies hand landmark sets into finger-gun firing poses and aim vectors
package gesture

import (
	"math"
	"strings"

	"github.com/lixenwraith/flicknfire/parameter"
	"github.com/lixenwraith/flicknfire/vmath"
)

// Handedness identifies which hand a landmark set belongs to
type Handedness uint8

const (
	HandLeft Handedness = iota
	HandRight
	HandCount
)

func (h Handedness) String() string {
	switch h {
	case HandLeft:
		return "left"
	case HandRight:
		return "right"
	}
	return "unknown"
}

// Opposite returns the other hand
func (h Handedness) Opposite() Handedness {
	if h == HandLeft {
		return HandRight
	}
	return HandLeft
}

// ParseHandedness accepts the pose pipeline labels ("Left", "Right") in any case
func ParseHandedness(label string) (Handedness, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "left":
		return HandLeft, true
	case "right":
		return HandRight, true
	}
	return HandRight, false
}

// Landmark is one normalized hand point, X and Y in [0,1] image space
type Landmark struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
	Z float64 `json:"z" msgpack:"z"`
}

// Hand is one detected hand of a pose frame
type Hand struct {
	Label     Handedness
	Landmarks []Landmark
}

// Frame is the per-frame pose input, zero or more hands
type Frame struct {
	Hands []Hand
}

// Reading is the interpreted state of one hand
type Reading struct {
	Hand   Handedness
	Firing bool
	Origin vmath.Vec2 // Index fingertip in play-area pixels
	Aim    vmath.Vec2 // Unit vector, zero unless Firing
}

// Valid reports finite coordinates inside the accepted tracker range
func (l Landmark) Valid() bool {
	return inRange(l.X) && inRange(l.Y) && !math.IsNaN(l.Z) && !math.IsInf(l.Z, 0)
}

func inRange(c float64) bool {
	return c >= parameter.LandmarkMinCoord && c <= parameter.LandmarkMaxCoord
}

// ValidLandmarks reports a full hand model with every point valid
func ValidLandmarks(lms []Landmark) bool {
	if len(lms) < parameter.LandmarkCount {
		return false
	}
	for _, l := range lms {
		if !l.Valid() {
			return false
		}
	}
	return true
}

func dist2D(a, b Landmark) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// IsFiringPose reports the finger-gun pose: index and thumb extended, other fingers curled
// Short or malformed landmark sets never match
func IsFiringPose(lms []Landmark) bool {
	if !ValidLandmarks(lms) {
		return false
	}
	wrist := lms[parameter.LandmarkWrist]
	return dist2D(lms[parameter.LandmarkIndexTip], wrist) > parameter.IndexExtendThreshold &&
		dist2D(lms[parameter.LandmarkThumbTip], wrist) > parameter.ThumbExtendThreshold &&
		dist2D(lms[parameter.LandmarkMiddleTip], wrist) < parameter.CurlThreshold &&
		dist2D(lms[parameter.LandmarkRingTip], wrist) < parameter.CurlThreshold &&
		dist2D(lms[parameter.LandmarkPinkyTip], wrist) < parameter.CurlThreshold
}

// Interpreter maps normalized hands into play-area readings
type Interpreter struct {
	Width  float64
	Height float64

	// Mirror flips landmarks horizontally and swaps labels, for selfie camera feeds
	Mirror bool
}

// NewInterpreter creates an interpreter for a play area of the given size
func NewInterpreter(width, height float64, mirror bool) *Interpreter {
	return &Interpreter{Width: width, Height: height, Mirror: mirror}
}

// Interpret classifies one hand, input is not modified
func (in *Interpreter) Interpret(h Hand) Reading {
	hand := h
	if in.Mirror {
		hand = MirrorHand(h)
	}

	r := Reading{Hand: hand.Label}
	if !IsFiringPose(hand.Landmarks) {
		return r
	}

	tip := in.toArena(hand.Landmarks[parameter.LandmarkIndexTip])
	pip := in.toArena(hand.Landmarks[parameter.LandmarkIndexPIP])
	if !tip.IsFinite() {
		return r
	}

	r.Firing = true
	r.Origin = tip
	r.Aim = tip.Sub(pip).Normalize()
	if r.Aim == (vmath.Vec2{}) || !r.Aim.IsFinite() {
		// Degenerate finger, the pose still fires straight up the image
		r.Aim = vmath.Vec2{Y: -1}
	}
	return r
}

// InterpretFrame classifies every hand of a frame
func (in *Interpreter) InterpretFrame(f Frame) []Reading {
	if len(f.Hands) == 0 {
		return nil
	}
	out := make([]Reading, 0, len(f.Hands))
	for _, h := range f.Hands {
		out = append(out, in.Interpret(h))
	}
	return out
}

func (in *Interpreter) toArena(l Landmark) vmath.Vec2 {
	return vmath.Vec2{X: l.X * in.Width, Y: l.Y * in.Height}
}

// MirrorHand returns a copy with x flipped and the label swapped
func MirrorHand(h Hand) Hand {
	out := Hand{Label: h.Label.Opposite(), Landmarks: make([]Landmark, len(h.Landmarks))}
	for i, l := range h.Landmarks {
		out.Landmarks[i] = Landmark{X: 1 - l.X, Y: l.Y, Z: l.Z}
	}
	return out
}
