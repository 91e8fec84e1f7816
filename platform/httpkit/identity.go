// Package httpkit provides HTTP utilities including identity abstraction.
package httpkit

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Role values carried in the access token.
const (
	RoleHost  = "host"
	RoleGuest = "guest"
)

// Identity represents the authenticated user's identity.
// This interface abstracts identity extraction from the web framework,
// allowing handlers to access user information without depending on Gin.
type Identity interface {
	// UserID returns the authenticated user's ID.
	UserID() string
	// Role returns the user's role claim (host or guest).
	Role() string
	// Token returns the raw bearer token, forwarded to collaborators.
	Token() string
	// IsAuthenticated returns true if the user is authenticated.
	IsAuthenticated() bool
}

// identity is the concrete implementation of Identity.
type identity struct {
	userID        string
	role          string
	token         string
	authenticated bool
}

func (i *identity) UserID() string {
	return i.userID
}

func (i *identity) Role() string {
	return i.role
}

func (i *identity) Token() string {
	return i.token
}

func (i *identity) IsAuthenticated() bool {
	return i.authenticated
}

// GetIdentity extracts the Identity from a Gin context.
// Returns an unauthenticated identity if user info is not present.
func GetIdentity(c *gin.Context) Identity {
	userID, userOK := c.Get(ContextUserIDKey)
	if !userOK {
		return &identity{authenticated: false}
	}

	uid, ok := userID.(string)
	if !ok || uid == "" {
		return &identity{authenticated: false}
	}

	role, _ := c.Get(ContextRoleKey)
	roleStr, _ := role.(string)

	token, _ := c.Get(ContextTokenKey)
	tokenStr, _ := token.(string)

	return &identity{
		userID:        uid,
		role:          roleStr,
		token:         tokenStr,
		authenticated: true,
	}
}

// MustGetIdentity extracts the Identity from a Gin context.
// If the user is not authenticated, it aborts with 401 Unauthorized and returns nil.
func MustGetIdentity(c *gin.Context) Identity {
	id := GetIdentity(c)
	if !id.IsAuthenticated() {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return nil
	}
	return id
}
