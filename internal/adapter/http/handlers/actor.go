package handlers

import (
	"net/http"

	"buildconnect/internal/adapter/http/middleware"
	"buildconnect/internal/domain/entities"
	"buildconnect/pkg"

	"github.com/gin-gonic/gin"
)

var errNoActor = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// currentActor pulls the authenticated caller placed by the auth middleware.
// Writes the 401 response itself when absent.
func currentActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errNoActor.HTTPStatus, errNoActor.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}
