package remote

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"piterface-backend/internal/shared/server/respond"
)

// Handler exposes the remote control over HTTP.
type Handler struct {
	Ctl *Control
}

// NewHandler constructs a Handler.
func NewHandler(ctl *Control) *Handler {
	return &Handler{Ctl: ctl}
}

// RegisterRoutes attaches remote control routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	r := rg.Group("/remote")
	r.GET("", h.getState)
	r.POST("/power", h.togglePower)
	r.POST("/channel", h.setChannel)
	r.POST("/channel/next", h.nextChannel)
	r.POST("/channel/previous", h.previousChannel)
	r.POST("/volume/up", h.volumeUp)
	r.POST("/volume/down", h.volumeDown)
	r.POST("/mute", h.mute)
	r.POST("/unmute", h.unmute)
}

func (h *Handler) getState(c *gin.Context) {
	respond.OK(c, h.Ctl.Snapshot())
}

func (h *Handler) togglePower(c *gin.Context) {
	h.Ctl.TogglePower()
	respond.OK(c, h.Ctl.Snapshot())
}

type setChannelRequest struct {
	Channel int `json:"channel"`
}

func (h *Handler) setChannel(c *gin.Context) {
	var req setChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.apply(c, h.Ctl.SetChannel(req.Channel))
}

func (h *Handler) nextChannel(c *gin.Context) {
	h.apply(c, h.Ctl.NextChannel())
}

func (h *Handler) previousChannel(c *gin.Context) {
	h.apply(c, h.Ctl.PreviousChannel())
}

type stepRequest struct {
	Step int `json:"step"`
}

func (h *Handler) volumeUp(c *gin.Context) {
	step, ok := h.bindStep(c)
	if !ok {
		return
	}
	h.apply(c, h.Ctl.IncreaseVolume(step))
}

func (h *Handler) volumeDown(c *gin.Context) {
	step, ok := h.bindStep(c)
	if !ok {
		return
	}
	h.apply(c, h.Ctl.DecreaseVolume(step))
}

func (h *Handler) mute(c *gin.Context) {
	h.apply(c, h.Ctl.Mute())
}

func (h *Handler) unmute(c *gin.Context) {
	h.apply(c, h.Ctl.Unmute())
}

// bindStep reads an optional {"step":N} body, defaulting to 1.
func (h *Handler) bindStep(c *gin.Context) (int, bool) {
	req := stepRequest{Step: 1}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return 0, false
		}
	}
	return req.Step, true
}

// apply maps a state machine error to an HTTP response, or returns the new
// snapshot on success.
func (h *Handler) apply(c *gin.Context, err error) {
	switch {
	case err == nil:
		respond.OK(c, h.Ctl.Snapshot())
	case errors.Is(err, ErrPoweredOff):
		respond.Error(c, http.StatusConflict, "powered_off", "device is powered off", nil)
	case errors.Is(err, ErrState):
		respond.Error(c, http.StatusUnprocessableEntity, "invalid_state", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "unexpected error", nil)
	}
}
