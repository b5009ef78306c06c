package models

import "time"

type NotificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	User      UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Message   string    `gorm:"type:text;not null"`
	Read      bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"index"`
}
