package scene

import (
	"math"
	"sync"

	"crownbeauty/models"
)

const (
	// ScrubSeconds is how long the displayed progress takes to catch up
	// with the scroll position.
	ScrubSeconds = 1.5

	IdleRollAmplitude = 0.06
	IdleRollFrequency = 0.5

	SectionHero    = "hero"
	SectionGallery = "gallery"
)

const scrubEpsilon = 1e-4

// Coordinator turns scroll and resize events into hand poses for one page.
// OnScroll and OnResize recompute the target synchronously; Tick advances
// the animation once per rendered frame. All methods are safe for
// concurrent use.
type Coordinator struct {
	mu    sync.Mutex
	store *ActivityStore
	unsub func()

	region    models.TriggerRegion
	bound     bool
	class     ViewportClass
	scrollY   float64
	target    float64
	displayed float64
	active    bool
	idleTime  float64
	pose      models.Pose

	generation uint64
	dirty      bool
	closed     bool
}

// NewCoordinator starts a Wide, active timeline at the start pose. Writes to
// store by other components mark the next frame as changed.
func NewCoordinator(store *ActivityStore) *Coordinator {
	if store == nil {
		store = NewActivityStore()
	}
	c := &Coordinator{
		store:  store,
		class:  Wide,
		active: true,
		pose:   KeyframesFor(Wide).Start,
		dirty:  true,
	}
	c.unsub = store.Subscribe(func(bool) { c.markDirty() })
	return c
}

// OnScroll records a new document scroll offset. Until the first OnResize
// binds a trigger region the offset is only stored; the resize applies it.
func (c *Coordinator) OnScroll(y float64) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.scrollY = y
	if !c.bound {
		c.mu.Unlock()
		return
	}
	changed, active := c.recompute()
	c.mu.Unlock()

	if changed {
		c.store.SetVisible(active)
	}
}

// OnResize records new viewport dimensions and anchor offsets. A change of
// viewport class rebinds the keyframes and restarts the timeline: the
// displayed progress jumps to the target and the generation is bumped.
func (c *Coordinator) OnResize(width, height float64, region models.TriggerRegion) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	region.ViewportHeight = height
	c.region = region
	c.bound = true
	class := ClassifyViewport(width)
	restart := class != c.class
	c.class = class
	changed, active := c.recompute()
	if restart {
		c.generation++
		c.displayed = c.target
		c.idleTime = 0
		c.pose = c.restPose()
		c.dirty = true
	}
	c.mu.Unlock()

	if changed {
		c.store.SetVisible(active)
	}
}

// OnSection applies a section viewport event: the gallery hides the hand
// and the hero shows it again. Leaving a section changes nothing.
func (c *Coordinator) OnSection(name string, entered bool) {
	if !entered {
		return
	}
	switch name {
	case SectionGallery:
		c.store.SetVisible(false)
	case SectionHero:
		c.store.SetVisible(true)
	}
}

// recompute refreshes target progress and the active flag. It reports
// whether active flipped. Caller holds c.mu.
func (c *Coordinator) recompute() (bool, bool) {
	c.target = Progress(c.scrollY, c.region)
	active := Active(c.scrollY, c.region)
	if active == c.active {
		return false, active
	}
	c.active = active
	c.dirty = true
	if !active {
		c.displayed = 1
		c.pose = KeyframesFor(c.class).End
	}
	return true, active
}

// restPose is the pose without idle motion at the displayed progress.
func (c *Coordinator) restPose() models.Pose {
	if !c.active {
		return KeyframesFor(c.class).End
	}
	return PoseAt(c.displayed, c.class)
}

// Tick advances the timeline by delta seconds. It returns a frame and true
// when there is something new to draw; a parked hand only produces a frame
// when its state changed.
func (c *Coordinator) Tick(delta float64) (models.SceneFrame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return models.SceneFrame{}, false
	}
	if !c.active {
		if !c.dirty {
			return models.SceneFrame{}, false
		}
		c.dirty = false
		return c.frame(), true
	}

	if delta > 0 {
		c.idleTime += delta
		c.displayed = scrub(c.displayed, c.target, delta)
	}
	pose := PoseAt(c.displayed, c.class)
	pose.Rotation.Z += IdleRollAmplitude * math.Sin(c.idleTime*IdleRollFrequency)
	c.pose = pose
	c.dirty = false
	return c.frame(), true
}

// Snapshot returns the current frame without advancing the timeline.
func (c *Coordinator) Snapshot() models.SceneFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame()
}

func (c *Coordinator) frame() models.SceneFrame {
	return models.SceneFrame{
		Type:       "frame",
		Progress:   c.displayed,
		Active:     c.active,
		Visible:    c.store.Visible(),
		Viewport:   string(c.class),
		Generation: c.generation,
		Pose:       c.pose,
	}
}

func (c *Coordinator) markDirty() {
	c.mu.Lock()
	c.dirty = true
	c.mu.Unlock()
}

// Close detaches from the store and stops the timeline. Further events and
// ticks are ignored.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()
	c.unsub()
}

// scrub moves displayed toward target, covering delta/ScrubSeconds of the gap.
func scrub(displayed, target, delta float64) float64 {
	alpha := delta / ScrubSeconds
	if alpha >= 1 || math.Abs(target-displayed) < scrubEpsilon {
		return target
	}
	return displayed + (target-displayed)*alpha
}
