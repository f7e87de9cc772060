package audit

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"PRESENSI/helper"
	"PRESENSI/models"

	"github.com/gin-gonic/gin"
)

// Umur maksimal log attempt sebelum dipangkas (hari).
const DefaultRetentionDays = 30

// ListAttemptsHandler (admin): log attempt terbaru dulu, paginasi.
func ListAttemptsHandler(c *gin.Context) {
	page, size := helper.Pagination(c.Query("page"), c.Query("size"))

	query := models.DB.Model(&models.FaceMatchAttempt{})
	if attemptType := c.Query("type"); attemptType != "" {
		query = query.Where("attempt_type = ?", attemptType)
	}
	if success := c.Query("success"); success != "" {
		query = query.Where("success = ?", success == "true")
	}

	var total int64
	query.Count(&total)

	var attempts []models.FaceMatchAttempt
	err := query.Order("created_at desc").Offset((page - 1) * size).Limit(size).Find(&attempts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"attempts": attempts, "total": total, "page": page, "size": size})
}

// GetAttemptHandler (admin): satu attempt lengkap dengan ranking-nya.
func GetAttemptHandler(c *gin.Context) {
	var attempt models.FaceMatchAttempt
	if err := models.DB.Where("id = ?", c.Param("id")).Take(&attempt).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log attempt tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt": attempt})
}

// PruneAttemptsHandler (admin): hapus log lebih tua dari ?days= (default 30).
// Operasi maintenance, bukan jalur keputusan.
func PruneAttemptsHandler(c *gin.Context) {
	days := DefaultRetentionDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter days tidak valid"})
			return
		}
		days = parsed
	}

	deleted, err := PruneOlderThan(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memangkas log"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Log attempt dipangkas", "deleted": deleted, "days": days})
}

// PruneOlderThan menghapus attempt yang lebih tua dari `days` hari.
// Dipanggil handler admin dan job harian gocron.
func PruneOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	result := models.DB.Where("created_at < ?", cutoff).Delete(&models.FaceMatchAttempt{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("Retensi: %d face match attempt dihapus (lebih tua dari %d hari)", result.RowsAffected, days)
	}
	return result.RowsAffected, nil
}
