package httpapi

import (
	"time"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

type userResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	IsTeam bool   `json:"is_team"`
}

type stepResponse struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"project_id"`
	StepNumber  int        `json:"step_number"`
	StepName    string     `json:"step_name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

type projectResponse struct {
	ID                 uint           `json:"id"`
	UserID             uint           `json:"user_id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	ProductURL         string         `json:"product_url,omitempty"`
	ProductImage       string         `json:"product_image,omitempty"`
	ProductCount       int            `json:"product_count"`
	SourceLocation     string         `json:"source_location,omitempty"`
	ProductDescription string         `json:"product_description"`
	Status             string         `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	NextStep           int            `json:"next_step"`
	Steps              []stepResponse `json:"steps"`
}

type notificationResponse struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  user.Phone,
		IsTeam: user.IsTeam,
	}
}

func toStepResponse(step *domain.OrderStep) stepResponse {
	return stepResponse{
		ID:          step.ID,
		ProjectID:   step.OrderID,
		StepNumber:  step.StepNumber,
		StepName:    step.StepName,
		Completed:   step.Completed,
		CompletedAt: step.CompletedAt,
	}
}

func toProjectResponse(order *domain.Order) projectResponse {
	steps := make([]stepResponse, len(order.Steps))
	for i, step := range order.Steps {
		steps[i] = toStepResponse(step)
	}

	return projectResponse{
		ID:                 order.ID,
		UserID:             order.UserID,
		Name:               order.Name,
		Description:        order.Description,
		ProductURL:         order.ProductURL,
		ProductImage:       order.ProductImage,
		ProductCount:       order.ProductCount,
		SourceLocation:     order.SourceLocation,
		ProductDescription: order.ProductDescription,
		Status:             string(order.Status),
		CreatedAt:          order.CreatedAt,
		NextStep:           order.NextStep,
		Steps:              steps,
	}
}

func toProjectResponses(orders []*domain.Order) []projectResponse {
	out := make([]projectResponse, len(orders))
	for i, order := range orders {
		out[i] = toProjectResponse(order)
	}
	return out
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		Read:      n.Read,
	}
}
