package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkroute/order-tracking-service/internal/domain"
	orderdto "github.com/silkroute/order-tracking-service/internal/usecase/dto/order"
)

func TestCreateOrderInitializesWorkflow(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	order, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		Name:               "Solar panels",
		ProductDescription: "400W mono panels, 50 units",
		SourceLocation:     "Shenzhen",
	}, customer)
	require.NoError(t, err)

	assert.Equal(t, customer.UserID, order.UserID)
	assert.Equal(t, domain.StatusOrderReceived, order.Status)
	assert.Equal(t, 1, order.NextStep)
	assert.Equal(t, 1, order.ProductCount)

	require.Len(t, order.Steps, len(domain.WorkflowTemplate))
	for i, step := range order.Steps {
		assert.Equal(t, i+1, step.StepNumber)
		assert.Equal(t, domain.WorkflowTemplate[i], step.StepName)
		assert.False(t, step.Completed)
		assert.Nil(t, step.CompletedAt)
	}
}

func TestCreateOrderRequiresDescription(t *testing.T) {
	uc, _, _ := newTestUsecase(t)

	_, err := uc.CreateOrder(&orderdto.CreateOrderInput{ProductDescription: "   "}, customer)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGetOrderOwnership(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	_, err := uc.GetOrderByID(order.ID, customer)
	require.NoError(t, err)

	_, err = uc.GetOrderByID(order.ID, otherCustomer)
	require.ErrorIs(t, err, domain.ErrForbidden)

	// Team members read any order.
	_, err = uc.GetOrderByID(order.ID, teamMember)
	require.NoError(t, err)

	_, err = uc.GetOrderByID(order.ID+100, customer)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOrdersScopedByRole(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	mine := mustCreateOrder(t, uc, customer)
	theirs := mustCreateOrder(t, uc, otherCustomer)

	orders, err := uc.ListOrders(customer, 0, 0)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)

	orders, err = uc.ListOrders(teamMember, 0, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	ids := []uint{orders[0].ID, orders[1].ID}
	assert.Contains(t, ids, mine.ID)
	assert.Contains(t, ids, theirs.ID)
}

func TestGetStepsOrderedAndGuarded(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	steps, err := uc.GetSteps(order.ID, customer)
	require.NoError(t, err)
	require.Len(t, steps, len(domain.WorkflowTemplate))
	for i := 1; i < len(steps); i++ {
		assert.Less(t, steps[i-1].StepNumber, steps[i].StepNumber)
	}

	_, err = uc.GetSteps(order.ID, otherCustomer)
	require.ErrorIs(t, err, domain.ErrForbidden)
}
