package scene

import (
	"math"
	"testing"

	"crownbeauty/models"

	"github.com/stretchr/testify/assert"
)

// start boundary 0, end boundary 1800 - 800/2 = 1400
var testRegion = models.TriggerRegion{StartAnchorTop: 0, EndAnchorTop: 1800, ViewportHeight: 800}

func TestProgressAtBoundaries(t *testing.T) {
	start, end := Boundaries(testRegion)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 1400.0, end)

	assert.Equal(t, 0.0, Progress(start, testRegion))
	assert.Equal(t, 1.0, Progress(end, testRegion))
	assert.InDelta(t, 0.5, Progress(700, testRegion), 1e-9)
}

func TestProgressIsClampedAndMonotone(t *testing.T) {
	assert.Equal(t, 0.0, Progress(-300, testRegion))
	assert.Equal(t, 1.0, Progress(5000, testRegion))

	prev := -1.0
	for y := -200.0; y <= 1600; y += 25 {
		p := Progress(y, testRegion)
		assert.GreaterOrEqual(t, p, prev, "progress dropped at y=%v", y)
		assert.True(t, p >= 0 && p <= 1)
		prev = p
	}
}

func TestProgressWithCollapsedRegion(t *testing.T) {
	region := models.TriggerRegion{StartAnchorTop: 500, EndAnchorTop: 600, ViewportHeight: 800}

	assert.Equal(t, 0.0, Progress(100, region))
	assert.Equal(t, 1.0, Progress(200, region))
	assert.Equal(t, 1.0, Progress(900, region))
}

func TestActiveUntilEndBoundary(t *testing.T) {
	assert.True(t, Active(0, testRegion))
	assert.True(t, Active(1400, testRegion))
	assert.False(t, Active(1400.5, testRegion))
}

func TestClassifyViewport(t *testing.T) {
	assert.Equal(t, Narrow, ClassifyViewport(375))
	assert.Equal(t, Narrow, ClassifyViewport(767.9))
	assert.Equal(t, Wide, ClassifyViewport(768))
	assert.Equal(t, Wide, ClassifyViewport(1920))
}

func TestPoseAtEndpointsMatchKeyframes(t *testing.T) {
	for _, class := range []ViewportClass{Narrow, Wide} {
		k := KeyframesFor(class)
		assert.Equal(t, k.Start, PoseAt(0, class), "class %s", class)
		assert.Equal(t, k.End, PoseAt(1, class), "class %s", class)
		assert.Equal(t, k.End, PoseAt(3, class), "class %s", class)
		assert.Equal(t, k.Start, PoseAt(-1, class), "class %s", class)
	}
}

func TestPoseAtInterpolatesLinearly(t *testing.T) {
	p := PoseAt(0.5, Wide)

	assert.InDelta(t, -3.0, p.Position.X, 1e-9)
	assert.InDelta(t, 1.0, p.Position.Y, 1e-9)
	assert.InDelta(t, -2.0, p.Position.Z, 1e-9)
	assert.InDelta(t, 0.15, p.Rotation.X, 1e-9)
	assert.InDelta(t, (-0.5+1.5*math.Pi)/2, p.Rotation.Y, 1e-9)
}

func TestKeyframesDifferPerClass(t *testing.T) {
	wide, narrow := KeyframesFor(Wide), KeyframesFor(Narrow)

	assert.Equal(t, models.Vec3{X: 2, Y: -1, Z: 0}, wide.Start.Position)
	assert.Equal(t, models.Vec3{X: 0.6, Y: -1.6, Z: 0}, narrow.Start.Position)
	assert.Equal(t, models.Vec3{X: -4, Y: 4, Z: -4}, narrow.End.Position)
	assert.Equal(t, wide.End.Rotation, narrow.End.Rotation)
	assert.Equal(t, wide, KeyframesFor("unknown"))
}
