package models

import "time"

const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleKaryawan   = "KARYAWAN"
)

type AdminUser struct {
	Id           int64     `gorm:"primaryKey" json:"id"`
	Nama         string    `gorm:"size:100" json:"nama"`
	Email        string    `gorm:"uniqueIndex;size:191" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	Role         string    `gorm:"size:20;default:ADMIN" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
