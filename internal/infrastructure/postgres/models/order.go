package models

import (
	"time"

	"github.com/silkroute/order-tracking-service/internal/domain"
)

type OrderModel struct {
	ID                 uint               `gorm:"primaryKey"`
	UserID             uint               `gorm:"index;not null"`
	User               UserModel          `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Name               string             `gorm:"size:255"`
	Description        string             `gorm:"type:text"`
	ProductURL         string             `gorm:"size:500"`
	ProductImage       string             `gorm:"size:500"`
	ProductCount       int                `gorm:"default:1"`
	SourceLocation     string             `gorm:"size:100"`
	ProductDescription string             `gorm:"type:text;not null"`
	Status             domain.OrderStatus `gorm:"size:50;index"`
	Steps              []OrderStepModel   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt          time.Time          `gorm:"index:idx_orders_created_at"`
	UpdatedAt          time.Time
}
