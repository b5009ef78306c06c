package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	usecase "github.com/silkroute/order-tracking-service/internal/usecase/order"
	orderdto "github.com/silkroute/order-tracking-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	uc  usecase.OrderUsecase
	log *zap.Logger
}

func NewOrderHandler(uc usecase.OrderUsecase, log *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

type createProjectRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	ProductURL         string `json:"product_url"`
	ProductImage       string `json:"product_image"`
	ProductCount       int    `json:"product_count"`
	SourceLocation     string `json:"source_location"`
	ProductDescription string `json:"product_description" binding:"required"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "product_description is required"})
		return
	}

	order, err := h.uc.CreateOrder(&orderdto.CreateOrderInput{
		Name:               req.Name,
		Description:        req.Description,
		ProductURL:         req.ProductURL,
		ProductImage:       req.ProductImage,
		ProductCount:       req.ProductCount,
		SourceLocation:     req.SourceLocation,
		ProductDescription: req.ProductDescription,
	}, currentActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProjectResponse(order))
}

func (h *OrderHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	orders, err := h.uc.ListOrders(currentActor(c), skip, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponses(orders))
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := projectIDParam(c)
	if !ok {
		return
	}

	order, err := h.uc.GetOrderByID(orderID, currentActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProjectResponse(order))
}

func (h *OrderHandler) GetSteps(c *gin.Context) {
	orderID, ok := projectIDParam(c)
	if !ok {
		return
	}

	steps, err := h.uc.GetSteps(orderID, currentActor(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	out := make([]stepResponse, len(steps))
	for i, step := range steps {
		out[i] = toStepResponse(step)
	}
	c.JSON(http.StatusOK, out)
}

func projectIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid project id"})
		return 0, false
	}
	return uint(id), true
}
