package scene

import (
	"math"

	"crownbeauty/models"
)

// ViewportClass selects which pair of keyframes drives the hand.
type ViewportClass string

const (
	Narrow ViewportClass = "narrow"
	Wide   ViewportClass = "wide"
)

// NarrowBreakpoint is the first width, in CSS pixels, treated as Wide.
const NarrowBreakpoint = 768.0

// Keyframes are the poses at progress 0 and 1.
type Keyframes struct {
	Start models.Pose `json:"start"`
	End   models.Pose `json:"end"`
}

var endRotation = models.Vec3{X: 0.3, Y: 1.5 * math.Pi, Z: 0.2}

var keyframesByClass = map[ViewportClass]Keyframes{
	Wide: {
		Start: models.Pose{
			Position: models.Vec3{X: 2, Y: -1, Z: 0},
			Rotation: models.Vec3{X: 0, Y: -0.5, Z: 0},
		},
		End: models.Pose{
			Position: models.Vec3{X: -8, Y: 3, Z: -4},
			Rotation: endRotation,
		},
	},
	Narrow: {
		Start: models.Pose{
			Position: models.Vec3{X: 0.6, Y: -1.6, Z: 0},
			Rotation: models.Vec3{X: 0, Y: -0.5, Z: 0},
		},
		End: models.Pose{
			Position: models.Vec3{X: -4, Y: 4, Z: -4},
			Rotation: endRotation,
		},
	},
}

// ClassifyViewport maps a viewport width to its class.
func ClassifyViewport(width float64) ViewportClass {
	if width < NarrowBreakpoint {
		return Narrow
	}
	return Wide
}

// KeyframesFor returns the keyframes of class. Unknown classes fall back to Wide.
func KeyframesFor(class ViewportClass) Keyframes {
	if k, ok := keyframesByClass[class]; ok {
		return k
	}
	return keyframesByClass[Wide]
}

// Boundaries returns the scroll offsets where progress is 0 and 1: the start
// anchor reaching the viewport top and the end anchor reaching its centre.
func Boundaries(region models.TriggerRegion) (start, end float64) {
	return region.StartAnchorTop, region.EndAnchorTop - region.ViewportHeight/2
}

// Progress maps a scroll offset into [0,1] across the trigger region.
func Progress(scrollY float64, region models.TriggerRegion) float64 {
	start, end := Boundaries(region)
	if end <= start {
		if scrollY >= end {
			return 1
		}
		return 0
	}
	return clamp01((scrollY - start) / (end - start))
}

// Active reports whether the region has not yet been scrolled past.
func Active(scrollY float64, region models.TriggerRegion) bool {
	_, end := Boundaries(region)
	return scrollY <= end
}

// PoseAt interpolates linearly between the class keyframes. progress is clamped.
func PoseAt(progress float64, class ViewportClass) models.Pose {
	k := KeyframesFor(class)
	t := clamp01(progress)
	return models.Pose{
		Position: lerpVec(k.Start.Position, k.End.Position, t),
		Rotation: lerpVec(k.Start.Rotation, k.End.Rotation, t),
	}
}

func lerpVec(a, b models.Vec3, t float64) models.Vec3 {
	return models.Vec3{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

// lerp returns b exactly at t=1 so a parked pose matches its keyframe.
func lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
