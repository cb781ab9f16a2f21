package actor

import "github.com/gin-gonic/gin"

const contextKey = "actor"

// Actor is the authenticated admin performing a mutation. It is copied
// verbatim into every ledger entry so history keeps rendering even after
// the admin account is deleted.
type Actor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// System is the actor attached to mutations performed by background jobs.
func System() Actor {
	return Actor{ID: "system", Name: "Auto Status Rule", Role: "system"}
}

// Set stores the actor on the request context.
func Set(c *gin.Context, a Actor) {
	c.Set(contextKey, a)
}

// FromContext returns the actor attached by the auth middleware.
func FromContext(c *gin.Context) (Actor, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Actor{}, false
	}
	a, ok := v.(Actor)
	return a, ok
}
