package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100"`
	Email        string `gorm:"size:100;uniqueIndex"`
	PasswordHash string `gorm:"type:text"`
	Phone        string `gorm:"size:20"`
	IsTeam       bool   `gorm:"default:false"`
}
