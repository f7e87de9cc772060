package models

import (
	"encoding/json"
	"time"
)

// Karyawan adalah subjek identitas yang melakukan presensi.
// Dibuat saat registrasi wajah di-approve admin.
type Karyawan struct {
	Id           int64           `gorm:"primaryKey" json:"id"`
	Nama         string          `json:"nama"`
	Email        *string         `gorm:"uniqueIndex;size:191" json:"email"`
	DepartemenId *int64          `gorm:"index" json:"departemen_id"`
	CabangId     *int64          `gorm:"index" json:"cabang_id"`
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	FotoUrl      *string         `json:"foto_url"`
	// Embedding tunggal versi lama. Dipertahankan untuk kompatibilitas aplikasi
	// Android lama; kalau terisi, nilainya selalu ikut dibandingkan bersama
	// baris-baris user_faces.
	LegacyEmbedding json.RawMessage `gorm:"type:json" json:"-"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Departemen *Departemen `gorm:"foreignKey:DepartemenId" json:"departemen,omitempty"`
	Cabang     *Cabang     `gorm:"foreignKey:CabangId" json:"cabang,omitempty"`
}

func (Karyawan) TableName() string {
	return "karyawan"
}

type Departemen struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:100" json:"nama"`
	Kode      string    `gorm:"uniqueIndex;size:20" json:"kode"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Departemen) TableName() string {
	return "departemen"
}

type Cabang struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:100" json:"nama"`
	Kode      string    `gorm:"uniqueIndex;size:20" json:"kode"`
	Alamat    *string   `json:"alamat"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Cabang) TableName() string {
	return "cabang"
}
