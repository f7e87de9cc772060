package admin

import (
	"net/http"

	"PRESENSI/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ===== DEPARTEMEN =====

type DepartemenPayload struct {
	Nama string `json:"nama" binding:"required"`
	Kode string `json:"kode" binding:"required,max=20"`
}

func ListDepartemenHandler(c *gin.Context) {
	var list []models.Departemen
	if err := models.DB.Order("nama asc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"departemen": list})
}

func CreateDepartemenHandler(c *gin.Context) {
	var payload DepartemenPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	var existing models.Departemen
	if err := models.DB.Where("kode = ?", payload.Kode).Take(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Kode departemen sudah dipakai"})
		return
	}

	departemen := models.Departemen{Nama: payload.Nama, Kode: payload.Kode}
	if err := models.DB.Create(&departemen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan departemen"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Departemen dibuat", "departemen": departemen})
}

func UpdateDepartemenHandler(c *gin.Context) {
	var departemen models.Departemen
	if err := models.DB.First(&departemen, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Departemen tidak ditemukan"})
		return
	}

	var payload DepartemenPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	// Kode unik, tapi boleh tetap pakai kode sendiri
	var clash models.Departemen
	err := models.DB.Where("kode = ? AND id <> ?", payload.Kode, departemen.Id).Take(&clash).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Kode departemen sudah dipakai"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	departemen.Nama = payload.Nama
	departemen.Kode = payload.Kode
	if err := models.DB.Save(&departemen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan departemen"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Departemen diubah", "departemen": departemen})
}

func DeleteDepartemenHandler(c *gin.Context) {
	var departemen models.Departemen
	if err := models.DB.First(&departemen, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Departemen tidak ditemukan"})
		return
	}

	// Jangan hapus departemen yang masih punya karyawan
	var count int64
	models.DB.Model(&models.Karyawan{}).Where("departemen_id = ?", departemen.Id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Masih ada karyawan di departemen ini"})
		return
	}

	if err := models.DB.Delete(&departemen).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus departemen"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Departemen dihapus"})
}

// ===== CABANG =====

type CabangPayload struct {
	Nama   string  `json:"nama" binding:"required"`
	Kode   string  `json:"kode" binding:"required,max=20"`
	Alamat *string `json:"alamat"`
}

func ListCabangHandler(c *gin.Context) {
	var list []models.Cabang
	if err := models.DB.Order("nama asc").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cabang": list})
}

func CreateCabangHandler(c *gin.Context) {
	var payload CabangPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	var existing models.Cabang
	if err := models.DB.Where("kode = ?", payload.Kode).Take(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Kode cabang sudah dipakai"})
		return
	}

	cabang := models.Cabang{Nama: payload.Nama, Kode: payload.Kode, Alamat: payload.Alamat}
	if err := models.DB.Create(&cabang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan cabang"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cabang dibuat", "cabang": cabang})
}

func UpdateCabangHandler(c *gin.Context) {
	var cabang models.Cabang
	if err := models.DB.First(&cabang, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cabang tidak ditemukan"})
		return
	}

	var payload CabangPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	var clash models.Cabang
	err := models.DB.Where("kode = ? AND id <> ?", payload.Kode, cabang.Id).Take(&clash).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Kode cabang sudah dipakai"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cabang.Nama = payload.Nama
	cabang.Kode = payload.Kode
	cabang.Alamat = payload.Alamat
	if err := models.DB.Save(&cabang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan cabang"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cabang diubah", "cabang": cabang})
}

func DeleteCabangHandler(c *gin.Context) {
	var cabang models.Cabang
	if err := models.DB.First(&cabang, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cabang tidak ditemukan"})
		return
	}

	var count int64
	models.DB.Model(&models.Karyawan{}).Where("cabang_id = ?", cabang.Id).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Masih ada karyawan di cabang ini"})
		return
	}

	if err := models.DB.Delete(&cabang).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus cabang"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cabang dihapus"})
}
