package usecase

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
	orderdto "github.com/silkroute/order-tracking-service/internal/usecase/dto/order"
)

var (
	customer      = domain.Actor{UserID: 1}
	otherCustomer = domain.Actor{UserID: 2}
	teamMember    = domain.Actor{UserID: 9, IsTeam: true}
)

func newTestUsecase(t *testing.T) (*DefaultOrderUsecase, *fakeOrderRepo, *fakeDispatcher) {
	t.Helper()
	repo := newFakeOrderRepo()
	dispatcher := &fakeDispatcher{}
	uc := NewDefaultOrderUsecase(repo, dispatcher, testMetrics, zap.NewNop())
	return uc, repo, dispatcher
}

func mustCreateOrder(t *testing.T, uc *DefaultOrderUsecase, actor domain.Actor) *domain.Order {
	t.Helper()
	order, err := uc.CreateOrder(&orderdto.CreateOrderInput{
		Name:               "Industrial pumps",
		ProductDescription: "20 centrifugal pumps, model XR-240",
	}, actor)
	require.NoError(t, err)
	return order
}

// requireContiguousPrefix asserts the completed step numbers form {1..k}.
func requireContiguousPrefix(t *testing.T, steps []*domain.OrderStep) {
	t.Helper()
	seenIncomplete := false
	for _, step := range steps {
		if !step.Completed {
			seenIncomplete = true
			continue
		}
		require.False(t, seenIncomplete,
			"step %d completed after an incomplete step", step.StepNumber)
	}
}

func TestCompleteStepInOrder(t *testing.T) {
	uc, repo, dispatcher := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	step, err := uc.CompleteStep(order.ID, 1, teamMember)
	require.NoError(t, err)
	assert.True(t, step.Completed)
	require.NotNil(t, step.CompletedAt)

	stored, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatus(domain.WorkflowTemplate[0]), stored.Status)
	assert.Equal(t, 2, stored.NextStep)
	assert.Equal(t, 1, dispatcher.count())

	// Skipping ahead must fail and change nothing.
	_, err = uc.CompleteStep(order.ID, 3, teamMember)
	require.ErrorIs(t, err, domain.ErrOutOfOrder)

	stored, err = repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatus(domain.WorkflowTemplate[0]), stored.Status)
	assert.Equal(t, 2, stored.NextStep)
	assert.Equal(t, 1, dispatcher.count())
	requireContiguousPrefix(t, stored.Steps)

	step, err = uc.CompleteStep(order.ID, 2, teamMember)
	require.NoError(t, err)
	assert.Equal(t, domain.WorkflowTemplate[1], step.StepName)

	stored, err = repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatus(domain.WorkflowTemplate[1]), stored.Status)
	assert.Equal(t, 3, stored.NextStep)
	assert.Equal(t, 2, dispatcher.count())
	requireContiguousPrefix(t, stored.Steps)
}

func TestCompleteStepForbiddenForCustomers(t *testing.T) {
	uc, repo, dispatcher := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	_, err := uc.CompleteStep(order.ID, 1, customer)
	require.ErrorIs(t, err, domain.ErrForbidden)

	stored, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOrderReceived, stored.Status)
	assert.Equal(t, 0, dispatcher.count())
}

func TestCompleteStepNotFound(t *testing.T) {
	uc, _, _ := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	_, err := uc.CompleteStep(order.ID+100, 1, teamMember)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CompleteStep(order.ID, len(domain.WorkflowTemplate)+1, teamMember)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompleteStepIdempotent(t *testing.T) {
	uc, _, dispatcher := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	first, err := uc.CompleteStep(order.ID, 1, teamMember)
	require.NoError(t, err)

	second, err := uc.CompleteStep(order.ID, 1, teamMember)
	require.ErrorIs(t, err, domain.ErrAlreadyCompleted)
	require.NotNil(t, second.CompletedAt)
	assert.True(t, first.CompletedAt.Equal(*second.CompletedAt),
		"repeat completion must keep the original timestamp")
	assert.Equal(t, 1, dispatcher.count())
}

func TestCompleteStepConcurrentDoubleComplete(t *testing.T) {
	uc, repo, dispatcher := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	_, err := uc.CompleteStep(order.ID, 1, teamMember)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	steps := make([]*domain.OrderStep, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			steps[i], results[i] = uc.CompleteStep(order.ID, 2, teamMember)
		}(i)
	}
	wg.Wait()

	var successes, repeats int
	for i := 0; i < 2; i++ {
		switch {
		case results[i] == nil:
			successes++
		case errors.Is(results[i], domain.ErrAlreadyCompleted):
			repeats++
		default:
			t.Fatalf("unexpected error: %v", results[i])
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, repeats)

	require.NotNil(t, steps[0].CompletedAt)
	require.NotNil(t, steps[1].CompletedAt)
	assert.True(t, steps[0].CompletedAt.Equal(*steps[1].CompletedAt))

	assert.Equal(t, 1, dispatcher.countFor(order.ID, 2))

	stored, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	requireContiguousPrefix(t, stored.Steps)
}

func TestStatusFollowsCompletionFrontier(t *testing.T) {
	uc, repo, _ := newTestUsecase(t)
	order := mustCreateOrder(t, uc, customer)

	stored, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOrderReceived, stored.Status)

	for n := 1; n <= len(domain.WorkflowTemplate); n++ {
		_, err := uc.CompleteStep(order.ID, n, teamMember)
		require.NoError(t, err)

		stored, err = repo.GetOrderByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatus(domain.WorkflowTemplate[n-1]), stored.Status)
		requireContiguousPrefix(t, stored.Steps)
	}

	assert.Equal(t, 0, stored.NextStep, "all steps complete")
}
