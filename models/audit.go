package models

import (
	"encoding/json"
	"log"
	"time"

	"PRESENSI/helper"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FaceMatchAttempt adalah log append-only untuk setiap percobaan pencocokan
// wajah, berhasil maupun gagal. Tujuannya diagnosa kualitas matching, jadi
// tetap dicatat walaupun absensinya sendiri ditolak (misal duplikat check-in).
type FaceMatchAttempt struct {
	Id              string          `gorm:"primaryKey;size:36" json:"id"` // UUID
	AttemptType     string          `gorm:"size:30;index" json:"attempt_type"`
	Success         bool            `json:"success"`
	MatchedUserId   *int64          `json:"matched_user_id"`
	MatchedUserName *string         `json:"matched_user_name"`
	Threshold       float64         `json:"threshold"`
	BestDistance    *float64        `json:"best_distance"`
	BestSimilarity  *float64        `json:"best_similarity"`
	TotalCompared   int             `json:"total_users_compared"`
	Ranking         json.RawMessage `gorm:"type:json" json:"ranking"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
}

func (FaceMatchAttempt) TableName() string {
	return "face_match_attempts"
}

// LogMatchAttempt mencatat satu kali percobaan matching berikut ranking
// lengkapnya. Success di sini = wajah dikenali (jarak <= ambang), terlepas
// dari nasib penulisan absensinya.
func LogMatchAttempt(db *gorm.DB, attemptType string, result helper.MatchResult, threshold float64, success bool) {
	attempt := FaceMatchAttempt{
		Id:            uuid.NewString(),
		AttemptType:   attemptType,
		Success:       success,
		Threshold:     threshold,
		TotalCompared: result.TotalCompared,
	}

	if result.Found {
		dist := result.Best.Distance
		sim := result.Best.Similarity
		attempt.BestDistance = &dist
		attempt.BestSimilarity = &sim
	}

	if success && result.Found {
		matchedId := result.Best.KaryawanId
		matchedName := result.Best.Nama
		attempt.MatchedUserId = &matchedId
		attempt.MatchedUserName = &matchedName
	}

	if raw, err := json.Marshal(result.Ranking); err == nil {
		attempt.Ranking = raw
	}

	// Log gagal tersimpan tidak boleh menggagalkan absensinya
	if err := db.Create(&attempt).Error; err != nil {
		log.Printf("Gagal menyimpan face match attempt: %v", err)
	}
}
