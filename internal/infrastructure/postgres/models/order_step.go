package models

import "time"

type OrderStepModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"not null;uniqueIndex:idx_order_step_number"`
	StepNumber  int    `gorm:"not null;uniqueIndex:idx_order_step_number"`
	StepName    string `gorm:"size:100;not null"`
	Completed   bool   `gorm:"default:false"`
	CompletedAt *time.Time
}
