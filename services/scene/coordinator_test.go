package scene

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoordinator(t *testing.T) (*Coordinator, *ActivityStore) {
	t.Helper()
	store := NewActivityStore()
	c := NewCoordinator(store)
	t.Cleanup(c.Close)
	c.OnResize(1280, 800, testRegion)
	return c, store
}

func TestParkedPoseIsEndPoseExactly(t *testing.T) {
	c, store := newTestCoordinator(t)

	c.OnScroll(2000)
	frame, ok := c.Tick(0.016)
	require.True(t, ok)
	assert.False(t, frame.Active)
	assert.Equal(t, 1.0, frame.Progress)
	assert.Equal(t, KeyframesFor(Wide).End, frame.Pose)
	assert.False(t, store.Visible())

	_, ok = c.Tick(0.016)
	assert.False(t, ok, "a parked hand should stop emitting frames")
}

func TestScrollingBackReactivates(t *testing.T) {
	c, store := newTestCoordinator(t)

	c.OnScroll(2000)
	require.False(t, store.Visible())

	c.OnScroll(0)
	assert.True(t, store.Visible())
	frame, ok := c.Tick(0.016)
	require.True(t, ok)
	assert.True(t, frame.Active)
}

func TestTickScrubsTowardTarget(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OnScroll(1400)
	frame, ok := c.Tick(0.15)
	require.True(t, ok)
	assert.InDelta(t, 0.1, frame.Progress, 1e-9)

	frame, _ = c.Tick(0.15)
	assert.InDelta(t, 0.19, frame.Progress, 1e-9)

	frame, _ = c.Tick(ScrubSeconds)
	assert.Equal(t, 1.0, frame.Progress)
}

func TestIdleRollWhileActive(t *testing.T) {
	c, _ := newTestCoordinator(t)

	frame, ok := c.Tick(1.0)
	require.True(t, ok)
	start := KeyframesFor(Wide).Start
	assert.Equal(t, start.Position, frame.Pose.Position)
	assert.InDelta(t, start.Rotation.Z+IdleRollAmplitude*math.Sin(IdleRollFrequency), frame.Pose.Rotation.Z, 1e-9)

	frame, _ = c.Tick(1.0)
	assert.InDelta(t, IdleRollAmplitude*math.Sin(2*IdleRollFrequency), frame.Pose.Rotation.Z, 1e-9)
}

func TestViewportClassChangeRestartsTimeline(t *testing.T) {
	c, _ := newTestCoordinator(t)
	c.OnScroll(700)
	c.Tick(0.1)

	before := c.Snapshot()
	assert.Equal(t, uint64(0), before.Generation)
	assert.Less(t, before.Progress, 0.5)

	c.OnResize(375, 800, testRegion)
	after := c.Snapshot()
	assert.Equal(t, uint64(1), after.Generation)
	assert.Equal(t, string(Narrow), after.Viewport)
	assert.InDelta(t, 0.5, after.Progress, 1e-9)
	assert.Equal(t, PoseAt(0.5, Narrow), after.Pose)

	c.OnResize(390, 700, testRegion)
	assert.Equal(t, uint64(1), c.Snapshot().Generation, "same class must not restart")
}

func TestResizeUsesNewViewportHeight(t *testing.T) {
	c, _ := newTestCoordinator(t)

	c.OnResize(1280, 400, testRegion)
	c.OnScroll(1600)
	frame, ok := c.Tick(ScrubSeconds)
	require.True(t, ok)
	assert.True(t, frame.Active)
	assert.Equal(t, 1.0, frame.Progress)
}

func TestSectionEventsDriveVisibility(t *testing.T) {
	c, store := newTestCoordinator(t)
	c.OnScroll(2000)
	c.Tick(0.016)

	c.OnSection(SectionHero, false)
	assert.False(t, store.Visible())

	c.OnSection(SectionHero, true)
	assert.True(t, store.Visible())
	frame, ok := c.Tick(0.016)
	require.True(t, ok, "an external store write should produce a frame")
	assert.True(t, frame.Visible)
	assert.False(t, frame.Active)

	c.OnSection(SectionGallery, true)
	assert.False(t, store.Visible())
}

func TestCloseStopsTimelineAndUnsubscribes(t *testing.T) {
	store := NewActivityStore()
	c := NewCoordinator(store)
	require.Equal(t, 1, store.Subscribers())

	c.Close()
	c.Close()
	assert.Equal(t, 0, store.Subscribers())

	c.OnScroll(5000)
	_, ok := c.Tick(0.016)
	assert.False(t, ok)
	assert.True(t, store.Visible())
}

func TestCoordinatorConcurrentEvents(t *testing.T) {
	c, _ := newTestCoordinator(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for y := 0.0; y < 2000; y += 10 {
			c.OnScroll(y)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%50 == 0 {
				c.OnResize(float64(300+i*5), 800, testRegion)
			}
			c.Tick(0.016)
		}
	}()
	wg.Wait()

	c.OnResize(1280, 800, testRegion)
	c.OnScroll(2000)
	c.Tick(0.016)
	assert.Equal(t, KeyframesFor(Wide).End, c.Snapshot().Pose)
}

func TestScrollBeforeFirstResizeIsDeferred(t *testing.T) {
	store := NewActivityStore()
	c := NewCoordinator(store)
	t.Cleanup(c.Close)

	c.OnScroll(600)
	frame, ok := c.Tick(0.016)
	require.True(t, ok)
	assert.True(t, frame.Active)
	assert.True(t, store.Visible())
	assert.Equal(t, 0.0, frame.Progress)

	c.OnResize(1280, 800, testRegion)
	frame, ok = c.Tick(ScrubSeconds)
	require.True(t, ok)
	assert.True(t, frame.Active)
	assert.InDelta(t, 600.0/1400.0, frame.Progress, 1e-9, "the stored offset applies once the region is bound")

	c.OnScroll(2000)
	assert.False(t, c.Snapshot().Active)
	assert.False(t, store.Visible())
}
