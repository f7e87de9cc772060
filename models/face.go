package models

import (
	"encoding/json"
	"time"
)

// Dimensi vektor wajah yang dihasilkan service ML (FaceNet 128-d).
const EmbeddingDim = 128

type UserFace struct {
	Id         int64           `gorm:"primaryKey" json:"id"`
	KaryawanId int64           `gorm:"index" json:"karyawan_id"`
	Name       string          `json:"name"`
	Embedding  json.RawMessage `gorm:"type:json" json:"-"` // Raw JSON dari DB
	Vector     []float64       `gorm:"-" json:"embedding"` // Helper buat coding
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (UserFace) TableName() string {
	return "user_faces"
}

// Status registrasi wajah. PENDING -> APPROVED | REJECTED, REJECTED terminal.
const (
	RegistrationPending  = "PENDING"
	RegistrationApproved = "APPROVED"
	RegistrationRejected = "REJECTED"
)

type FaceRegistration struct {
	Id           int64           `gorm:"primaryKey" json:"id"`
	Nama         string          `json:"nama"`
	Email        *string         `gorm:"size:191" json:"email"`
	DepartemenId *int64          `json:"departemen_id"`
	CabangId     *int64          `json:"cabang_id"`
	Embeddings   json.RawMessage `gorm:"type:json" json:"-"` // Array of vektor, JSON
	ImageUrl     *string         `json:"image_url"`
	Status       string          `gorm:"size:20;default:PENDING;index" json:"status"`
	// Diisi saat admin memutuskan (approve/reject)
	ReviewedBy    *int64     `json:"reviewed_by"`
	ReviewedAt    *time.Time `json:"reviewed_at"`
	RejectReason  *string    `json:"reject_reason"`
	KaryawanId    *int64     `json:"karyawan_id"` // Terisi setelah approve
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (FaceRegistration) TableName() string {
	return "face_registrations"
}

// ParseEmbeddings membongkar kolom JSON menjadi slice vektor.
// Baris dengan JSON rusak menghasilkan slice kosong, bukan error.
func (r *FaceRegistration) ParseEmbeddings() [][]float64 {
	var vectors [][]float64
	if err := json.Unmarshal(r.Embeddings, &vectors); err != nil {
		return nil
	}
	return vectors
}
