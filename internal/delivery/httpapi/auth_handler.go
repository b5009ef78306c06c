package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/usecase/auth"
)

type AuthHandler struct {
	uc  *auth.DefaultAuthUsecase
	log *zap.Logger
}

func NewAuthHandler(uc *auth.DefaultAuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
		return
	}

	token, user, err := h.uc.Login(req.Email, req.Password)
	if err != nil {
		abortWithError(c, err)
		return
	}

	h.log.Info("user logged in", zap.Uint("user_id", user.ID), zap.Bool("is_team", user.IsTeam))
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, false)
}

func (h *AuthHandler) RegisterTeam(c *gin.Context) {
	h.register(c, true)
}

func (h *AuthHandler) register(c *gin.Context, isTeam bool) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	user, err := h.uc.Register(&auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}, isTeam)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
