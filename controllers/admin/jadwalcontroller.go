package admin

import (
	"net/http"

	"PRESENSI/helper"
	"PRESENSI/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JadwalPayload struct {
	DepartemenId int64  `json:"departemen_id" binding:"required"`
	Nama         string `json:"nama" binding:"required"`
	CheckInTime  string `json:"check_in_time" binding:"required"`
	CheckOutTime string `json:"check_out_time" binding:"required"`
}

func ListJadwalHandler(c *gin.Context) {
	query := models.DB.Model(&models.JadwalKerja{})
	if departemenId := c.Query("departemen_id"); departemenId != "" {
		query = query.Where("departemen_id = ?", departemenId)
	}

	var list []models.JadwalKerja
	if err := query.Order("departemen_id asc, id desc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jadwal": list})
}

// CreateJadwalHandler membuat jadwal aktif baru untuk satu departemen.
// Invariant: maksimal SATU jadwal aktif per departemen, jadi jadwal aktif
// lama dinonaktifkan dalam transaksi yang sama.
func CreateJadwalHandler(c *gin.Context) {
	var payload JadwalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	if err := helper.ValidateScheduleTimes(payload.CheckInTime, payload.CheckOutTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var departemen models.Departemen
	if err := models.DB.First(&departemen, payload.DepartemenId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Departemen tidak ditemukan"})
		return
	}

	var jadwal models.JadwalKerja
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.JadwalKerja{}).
			Where("departemen_id = ? AND is_active = ?", payload.DepartemenId, true).
			Update("is_active", false).Error
		if err != nil {
			return err
		}

		jadwal = models.JadwalKerja{
			DepartemenId: payload.DepartemenId,
			Nama:         payload.Nama,
			CheckInTime:  payload.CheckInTime,
			CheckOutTime: payload.CheckOutTime,
			IsActive:     true,
		}
		return tx.Create(&jadwal).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan jadwal"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Jadwal kerja dibuat", "jadwal": jadwal})
}

type UpdateJadwalPayload struct {
	Nama         *string `json:"nama"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	IsActive     *bool   `json:"is_active"`
}

func UpdateJadwalHandler(c *gin.Context) {
	var jadwal models.JadwalKerja
	if err := models.DB.First(&jadwal, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jadwal tidak ditemukan"})
		return
	}

	var payload UpdateJadwalPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	if payload.Nama != nil {
		jadwal.Nama = *payload.Nama
	}
	if payload.CheckInTime != nil {
		jadwal.CheckInTime = *payload.CheckInTime
	}
	if payload.CheckOutTime != nil {
		jadwal.CheckOutTime = *payload.CheckOutTime
	}

	// Validasi ulang pasangan jam setelah perubahan
	if err := helper.ValidateScheduleTimes(jadwal.CheckInTime, jadwal.CheckOutTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if payload.IsActive != nil && *payload.IsActive && !jadwal.IsActive {
			// Mengaktifkan jadwal ini berarti menonaktifkan yang lain
			err := tx.Model(&models.JadwalKerja{}).
				Where("departemen_id = ? AND is_active = ?", jadwal.DepartemenId, true).
				Update("is_active", false).Error
			if err != nil {
				return err
			}
			jadwal.IsActive = true
		} else if payload.IsActive != nil {
			jadwal.IsActive = *payload.IsActive
		}
		return tx.Save(&jadwal).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan jadwal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Jadwal kerja diubah", "jadwal": jadwal})
}

func DeleteJadwalHandler(c *gin.Context) {
	var jadwal models.JadwalKerja
	if err := models.DB.First(&jadwal, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jadwal tidak ditemukan"})
		return
	}

	if err := models.DB.Delete(&jadwal).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus jadwal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Jadwal dihapus"})
}
