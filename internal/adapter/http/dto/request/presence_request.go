package request

// PresenceRequest identifies one client connection of the caller.
type PresenceRequest struct {
	ConnectionID string `json:"connection_id" binding:"required"`
}
