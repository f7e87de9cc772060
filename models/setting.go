package models

import (
	"strconv"
	"time"

	"gorm.io/gorm"
)

type Setting struct {
	Key       string    `gorm:"size:64;primaryKey" json:"key"`
	Value     string    `gorm:"size:255" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

const (
	SettingKeyFaceThreshold = "face_match_threshold"

	// Default ambang jarak Euclidean kalau setting belum pernah diisi.
	DefaultFaceThreshold = 0.7
)

// GetFaceThreshold membaca ambang jarak dari settings. Sengaja tidak di-cache:
// setiap keputusan matching baca ulang supaya perubahan admin langsung berlaku.
func GetFaceThreshold(db *gorm.DB) float64 {
	var setting Setting
	err := db.Where("`key` = ?", SettingKeyFaceThreshold).Take(&setting).Error
	if err != nil {
		return DefaultFaceThreshold
	}

	value, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || value < 0.1 || value > 1.0 {
		return DefaultFaceThreshold
	}
	return value
}

// SetFaceThreshold menyimpan ambang baru. Range valid 0.1 - 1.0.
func SetFaceThreshold(db *gorm.DB, value float64) error {
	raw := strconv.FormatFloat(value, 'f', -1, 64)

	var setting Setting
	err := db.Where("`key` = ?", SettingKeyFaceThreshold).Take(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(&Setting{Key: SettingKeyFaceThreshold, Value: raw}).Error
	}
	if err != nil {
		return err
	}

	setting.Value = raw
	return db.Save(&setting).Error
}
