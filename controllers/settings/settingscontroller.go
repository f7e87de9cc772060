package settings

import (
	"net/http"

	"PRESENSI/models"

	"github.com/gin-gonic/gin"
)

// GetThresholdHandler mengembalikan ambang jarak matching yang berlaku.
func GetThresholdHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"threshold": models.GetFaceThreshold(models.DB),
	})
}

type UpdateThresholdPayload struct {
	Threshold float64 `json:"threshold" binding:"required"`
}

// UpdateThresholdHandler (admin): ganti ambang jarak. Range valid 0.1 - 1.0.
// Nilai baru langsung berlaku untuk keputusan berikutnya karena setting
// dibaca ulang setiap kali matching.
func UpdateThresholdHandler(c *gin.Context) {
	var payload UpdateThresholdPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	if payload.Threshold < 0.1 || payload.Threshold > 1.0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Threshold harus di antara 0.1 dan 1.0"})
		return
	}

	if err := models.SetFaceThreshold(models.DB, payload.Threshold); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan threshold"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Threshold berhasil diubah",
		"threshold": payload.Threshold,
	})
}
