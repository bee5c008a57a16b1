package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"crownbeauty/models"
	"crownbeauty/services/scene"
	"crownbeauty/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024

	defaultFrameRate = 30
	maxFrameRate     = 120
)

// SceneHandler hosts the hand-scene coordinator, one per websocket.
type SceneHandler struct {
	Model     *scene.HandModel
	FrameRate int
	Logger    *zap.Logger
	Metrics   *utils.Metrics
	Upgrader  websocket.Upgrader
}

// NewSceneHandler accepts websocket origins listed in origins; "*" or an
// empty list allows any origin.
func NewSceneHandler(model *scene.HandModel, frameRate int, origins []string, logger *zap.Logger, metrics *utils.Metrics) *SceneHandler {
	return &SceneHandler{
		Model:     model,
		FrameRate: clampFrameRate(frameRate),
		Logger:    logger,
		Metrics:   metrics,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(origins),
		},
	}
}

func clampFrameRate(rate int) int {
	switch {
	case rate <= 0:
		return defaultFrameRate
	case rate > maxFrameRate:
		return maxFrameRate
	}
	return rate
}

// frameInterval is the ticker period for FrameRate, clamped to 1..maxFrameRate fps.
func (h *SceneHandler) frameInterval() time.Duration {
	return time.Second / time.Duration(clampFrameRate(h.FrameRate))
}

func originChecker(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || len(allowed) == 0 || allowed[origin]
	}
}

// ServeWS handles GET /api/scene/ws. The browser streams resize, scroll and
// section events; the server answers with frames at FrameRate.
func (h *SceneHandler) ServeWS(c *gin.Context) {
	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Warn("Scene websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ready := scene.Isolate(h.Logger, "hand-model", func() error {
		_, err := h.Model.Load()
		return err
	})
	if !ready {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(gin.H{"type": "disabled"})
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "scene disabled"))
		return
	}

	h.Metrics.SceneOpened()
	defer h.Metrics.SceneClosed()

	coord := scene.NewCoordinator(scene.NewActivityStore())
	defer coord.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		defer cancel()
		h.readPump(conn, coord)
	}()

	h.framePump(ctx, conn, coord)
	conn.Close()
	<-readDone
}

// readPump applies inbound events to the coordinator until the peer goes away.
func (h *SceneHandler) readPump(conn *websocket.Conn, coord *scene.Coordinator) {
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.Logger.Warn("Scene websocket read error", zap.Error(err))
			}
			return
		}

		var msg models.SceneMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.Logger.Debug("Ignoring malformed scene message", zap.Error(err))
			continue
		}
		applySceneMessage(coord, msg)
	}
}

func applySceneMessage(coord *scene.Coordinator, msg models.SceneMessage) {
	switch msg.Type {
	case "resize":
		coord.OnResize(msg.Width, msg.Height, models.TriggerRegion{
			StartAnchorTop: msg.StartAnchorTop,
			EndAnchorTop:   msg.EndAnchorTop,
		})
	case "scroll":
		coord.OnScroll(msg.Y)
	case "section":
		coord.OnSection(msg.Name, msg.Entered)
	}
}

// framePump ticks the coordinator once per frame and is the only writer on conn.
func (h *SceneHandler) framePump(ctx context.Context, conn *websocket.Conn, coord *scene.Coordinator) {
	frames := time.NewTicker(h.frameInterval())
	pings := time.NewTicker(pingPeriod)
	defer func() {
		frames.Stop()
		pings.Stop()
	}()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case now := <-frames.C:
			delta := now.Sub(last).Seconds()
			last = now
			frame, ok := coord.Tick(delta)
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(frame); err != nil {
				return
			}

		case <-pings.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// GetKeyframes handles GET /api/scene/keyframes.
func (h *SceneHandler) GetKeyframes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"breakpoint": scene.NarrowBreakpoint,
		"narrow":     scene.KeyframesFor(scene.Narrow),
		"wide":       scene.KeyframesFor(scene.Wide),
	})
}

// GetPose handles GET /api/scene/pose?progress=&viewport=.
func (h *SceneHandler) GetPose(c *gin.Context) {
	progress, err := strconv.ParseFloat(c.DefaultQuery("progress", "0"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "progress must be a number", err.Error())
		return
	}
	class := scene.ViewportClass(c.DefaultQuery("viewport", string(scene.Wide)))
	if class != scene.Narrow && class != scene.Wide {
		utils.JSONError(c, http.StatusBadRequest, "viewport must be narrow or wide", "")
		return
	}
	c.JSON(http.StatusOK, scene.PoseAt(progress, class))
}

// GetModel handles GET /api/scene/model. An unavailable asset answers 204 so
// the page simply renders no hand.
func (h *SceneHandler) GetModel(c *gin.Context) {
	asset, err := h.Model.Load()
	if err != nil {
		h.Logger.Debug("Hand model unavailable", zap.Error(err))
		c.Status(http.StatusNoContent)
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "model/gltf-binary", asset.Data)
}
