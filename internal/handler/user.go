package handler

import (
	"net/http"

	"github.com/irisalmeida/registra-ai/internal/middleware"
	"github.com/irisalmeida/registra-ai/internal/models"
	"github.com/irisalmeida/registra-ai/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser fetches the authenticated user placed by the auth middleware.
// Writes the 401 envelope itself when it is missing.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "unauthenticated")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, "unauthenticated")
		return nil, false
	}
	return user, true
}

// GetMe returns the profile of the authenticated caller.
func GetMe(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"user": user,
	})
}
