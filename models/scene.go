package models

// Vec3 is a position or an Euler rotation (radians, XYZ order).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Pose places the hand model in the scene.
type Pose struct {
	Position Vec3 `json:"position"`
	Rotation Vec3 `json:"rotation"`
}

// TriggerRegion describes the scroll interval driving the hand animation, in
// document pixels.
type TriggerRegion struct {
	StartAnchorTop float64 `json:"startAnchorTop"`
	EndAnchorTop   float64 `json:"endAnchorTop"`
	ViewportHeight float64 `json:"viewportHeight"`
}

// SceneFrame is pushed to the browser once per rendered frame that changed.
type SceneFrame struct {
	Type       string  `json:"type"`
	Progress   float64 `json:"progress"`
	Active     bool    `json:"active"`
	Visible    bool    `json:"visible"`
	Viewport   string  `json:"viewport"`
	Generation uint64  `json:"generation"`
	Pose       Pose    `json:"pose"`
}

// SceneMessage is an inbound event from the browser.
type SceneMessage struct {
	Type           string  `json:"type"`
	Y              float64 `json:"y,omitempty"`
	Width          float64 `json:"width,omitempty"`
	Height         float64 `json:"height,omitempty"`
	StartAnchorTop float64 `json:"startAnchorTop,omitempty"`
	EndAnchorTop   float64 `json:"endAnchorTop,omitempty"`
	Name           string  `json:"name,omitempty"`
	Entered        bool    `json:"entered,omitempty"`
}
