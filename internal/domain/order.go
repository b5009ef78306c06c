package domain

import "time"

type OrderStatus string

// StatusOrderReceived is the initial status of every order. It matches the
// name of workflow step 1, so completing step 1 leaves the status unchanged.
const StatusOrderReceived OrderStatus = "Order Received"

type Order struct {
	ID                 uint
	UserID             uint
	Name               string
	Description        string
	ProductURL         string
	ProductImage       string
	ProductCount       int
	SourceLocation     string
	ProductDescription string
	Status             OrderStatus
	CreatedAt          time.Time
	NextStep           int
	Steps              []*OrderStep
}

type OrderStep struct {
	ID          uint
	OrderID     uint
	StepNumber  int
	StepName    string
	Completed   bool
	CompletedAt *time.Time
}

// WorkflowTemplate is the fixed step sequence attached to every new order,
// in step_number order starting from 1.
var WorkflowTemplate = []string{
	"Order Received",
	"Contract Signed",
	"Advance Payment Received",
	"Order Placed in China",
	"Items Stored in China Warehouse",
	"Items Sent to Cargo Ship",
	"Goods Clearance Permit (China)",
	"Shipped to Dubai Port",
	"Arrived at Dubai Port",
	"Loaded on Ship to Iran",
	"Goods Clearance Permit (Iran)",
	"Delivered to User Warehouse in Iran",
	"Final Confirmation from User",
}

// NextIncompleteStep returns the lowest incomplete step number, or 0 when
// every step is completed. Steps must be sorted by step_number ascending.
func NextIncompleteStep(steps []*OrderStep) int {
	for _, step := range steps {
		if !step.Completed {
			return step.StepNumber
		}
	}
	return 0
}
