package usecase

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

// CompleteStep transitions one step from pending to completed and derives
// the new order status from it. The transition is gated on the whole
// prerequisite prefix 1..N-1 being completed, and serialized per order, so
// the completed set is always a contiguous prefix of the step sequence.
//
// A step that is already completed is returned unchanged together with
// domain.ErrAlreadyCompleted; callers treat that as an idempotent success.
func (uc *DefaultOrderUsecase) CompleteStep(orderID uint, stepNumber int, actor domain.Actor) (*domain.OrderStep, error) {
	if !actor.IsTeam {
		uc.Metrics.RecordStepRejected("forbidden")
		return nil, domain.ErrForbidden
	}

	mu := uc.locks.forOrder(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	var target *domain.OrderStep
	for _, step := range order.Steps {
		if step.StepNumber == stepNumber {
			target = step
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: step %d", domain.ErrNotFound, stepNumber)
	}

	if target.Completed {
		uc.Metrics.RecordStepRejected("already_completed")
		return target, domain.ErrAlreadyCompleted
	}

	for _, step := range order.Steps {
		if step.StepNumber < stepNumber && !step.Completed {
			uc.Metrics.RecordStepRejected("out_of_order")
			return nil, fmt.Errorf("%w: step %d is pending", domain.ErrOutOfOrder, step.StepNumber)
		}
	}

	now := time.Now()
	target.Completed = true
	target.CompletedAt = &now

	if err := uc.OrderRepo.MarkStepCompleted(target, domain.OrderStatus(target.StepName)); err != nil {
		if errors.Is(err, domain.ErrAlreadyCompleted) {
			// Lost a cross-process race; surface the committed state.
			return uc.refetchStep(orderID, stepNumber)
		}
		target.Completed = false
		target.CompletedAt = nil
		return nil, err
	}

	uc.Metrics.RecordStepCompleted(target.StepName)
	uc.Log.Info("step completed",
		zap.Uint("order_id", orderID),
		zap.Int("step_number", stepNumber),
		zap.String("step_name", target.StepName),
	)

	// Exactly one dispatch per transition. Delivery problems are the
	// dispatcher's to log; the committed completion stands either way.
	if _, err := uc.Dispatcher.Dispatch(domain.StepEvent{
		OrderID:    orderID,
		StepNumber: stepNumber,
		StepName:   target.StepName,
	}); err != nil {
		uc.Log.Error("failed to dispatch step notification",
			zap.Uint("order_id", orderID),
			zap.Int("step_number", stepNumber),
			zap.Error(err),
		)
	}

	return target, nil
}

func (uc *DefaultOrderUsecase) refetchStep(orderID uint, stepNumber int) (*domain.OrderStep, error) {
	steps, err := uc.OrderRepo.GetSteps(orderID)
	if err != nil {
		return nil, err
	}
	for _, step := range steps {
		if step.StepNumber == stepNumber {
			return step, domain.ErrAlreadyCompleted
		}
	}
	return nil, fmt.Errorf("%w: step %d", domain.ErrNotFound, stepNumber)
}
