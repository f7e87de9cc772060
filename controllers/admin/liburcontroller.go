package admin

import (
	"net/http"
	"time"

	"PRESENSI/models"

	"github.com/gin-gonic/gin"
)

type HariLiburPayload struct {
	Tanggal string `json:"tanggal" binding:"required"` // "2006-01-02"
	Nama    string `json:"nama" binding:"required"`
}

func ListHariLiburHandler(c *gin.Context) {
	query := models.DB.Model(&models.HariLibur{})
	if tahun := c.Query("tahun"); tahun != "" {
		query = query.Where("tanggal LIKE ?", tahun+"-%")
	}

	var list []models.HariLibur
	if err := query.Order("tanggal asc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hari_libur": list})
}

func CreateHariLiburHandler(c *gin.Context) {
	var payload HariLiburPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", payload.Tanggal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format tanggal harus YYYY-MM-DD"})
		return
	}

	var existing models.HariLibur
	if err := models.DB.Where("tanggal = ?", payload.Tanggal).Take(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Tanggal ini sudah terdaftar sebagai hari libur"})
		return
	}

	libur := models.HariLibur{Tanggal: payload.Tanggal, Nama: payload.Nama}
	if err := models.DB.Create(&libur).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan hari libur"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Hari libur dibuat", "hari_libur": libur})
}

func DeleteHariLiburHandler(c *gin.Context) {
	var libur models.HariLibur
	if err := models.DB.First(&libur, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hari libur tidak ditemukan"})
		return
	}

	if err := models.DB.Delete(&libur).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus hari libur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hari libur dihapus"})
}
