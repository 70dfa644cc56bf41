package handlers

import (
	"net/http"

	request "buildconnect/internal/adapter/http/dto/request"
	"buildconnect/internal/presence"
	"buildconnect/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPresencePayload = pkg.NewDomainErrorSimple("INVALID_PRESENCE_INPUT", "Invalid presence payload", http.StatusBadRequest)
)

// PresenceHandler exposes the in-memory connection registry. Connections
// are registered under the authenticated caller, never an arbitrary user.

type PresenceHandler struct {
	tracker *presence.Tracker
}

func NewPresenceHandler(tracker *presence.Tracker) *PresenceHandler {
	return &PresenceHandler{tracker: tracker}
}

func (h *PresenceHandler) Connect(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload request.PresenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPresencePayload.HTTPStatus, errInvalidPresencePayload.ToHTTPError())
		return
	}

	h.tracker.Connect(actor.UserID, payload.ConnectionID)
	c.JSON(http.StatusOK, gin.H{"online": true})
}

func (h *PresenceHandler) Disconnect(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var payload request.PresenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPresencePayload.HTTPStatus, errInvalidPresencePayload.ToHTTPError())
		return
	}

	h.tracker.Disconnect(actor.UserID, payload.ConnectionID)
	c.JSON(http.StatusOK, gin.H{"online": h.tracker.IsOnline(actor.UserID)})
}

func (h *PresenceHandler) GetUserPresence(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	userID := c.Param("user_id")
	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"online":  h.tracker.IsOnline(userID),
	})
}

func (h *PresenceHandler) GetOnlineCount(c *gin.Context) {
	if _, ok := currentActor(c); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"online_count": h.tracker.OnlineCount()})
}
