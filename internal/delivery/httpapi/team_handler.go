package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
	usecase "github.com/silkroute/order-tracking-service/internal/usecase/order"
)

type TeamHandler struct {
	uc  usecase.OrderUsecase
	log *zap.Logger
}

func NewTeamHandler(uc usecase.OrderUsecase, log *zap.Logger) *TeamHandler {
	return &TeamHandler{uc: uc, log: log}
}

// ListProjects serves the team dashboard: every order, newest first.
func (h *TeamHandler) ListProjects(c *gin.Context) {
	skip, limit := pagination(c)
	orders, err := h.uc.ListOrders(currentActor(c), skip, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponses(orders))
}

// CompleteStep marks a workflow step completed. A step that is already
// completed comes back 200 with its original timestamp, so retries and
// double-clicks are harmless.
func (h *TeamHandler) CompleteStep(c *gin.Context) {
	orderID, ok := projectIDParam(c)
	if !ok {
		return
	}
	stepNumber, err := strconv.Atoi(c.Param("step_number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid step number"})
		return
	}

	step, err := h.uc.CompleteStep(orderID, stepNumber, currentActor(c))
	if err != nil && !errors.Is(err, domain.ErrAlreadyCompleted) {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toStepResponse(step))
}
