package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

type UserHandler struct {
	users domain.UserRepository
}

func NewUserHandler(users domain.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetUserByID(currentActor(c).UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// List is team-only (enforced by route middleware).
func (h *UserHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	users, err := h.users.GetUsers(skip, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]userResponse, len(users))
	for i, user := range users {
		out[i] = toUserResponse(user)
	}
	c.JSON(http.StatusOK, out)
}
