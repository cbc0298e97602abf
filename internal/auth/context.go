package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/salamtec/inventory-service/internal/model"
)

// actorKey is where the auth middleware stores the request's actor.
const actorKey = "actor"

func SetActor(c *gin.Context, actor model.Actor) {
	c.Set(actorKey, actor)
}

// ActorFromContext returns the actor populated by the auth middleware. A
// missing actor yields the zero value; handlers behind RequireAuth never
// see that.
func ActorFromContext(c *gin.Context) model.Actor {
	if val, ok := c.Get(actorKey); ok {
		if actor, ok := val.(model.Actor); ok {
			return actor
		}
	}
	return model.Actor{}
}
