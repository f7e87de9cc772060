package admin

import (
	"net/http"
	"time"

	"PRESENSI/helper"
	"PRESENSI/models"

	"github.com/gin-gonic/gin"
)

func ListKaryawanHandler(c *gin.Context) {
	page, size := helper.Pagination(c.Query("page"), c.Query("size"))

	query := models.DB.Model(&models.Karyawan{}).Preload("Departemen").Preload("Cabang")
	if departemenId := c.Query("departemen_id"); departemenId != "" {
		query = query.Where("departemen_id = ?", departemenId)
	}
	if nama := c.Query("nama"); nama != "" {
		query = query.Where("nama LIKE ?", "%"+nama+"%")
	}

	var total int64
	query.Count(&total)

	var list []models.Karyawan
	err := query.Order("nama asc").Offset((page - 1) * size).Limit(size).Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"karyawan": list, "total": total, "page": page, "size": size})
}

func GetKaryawanHandler(c *gin.Context) {
	var karyawan models.Karyawan
	err := models.DB.Preload("Departemen").Preload("Cabang").First(&karyawan, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan tidak ditemukan"})
		return
	}

	var faceCount int64
	models.DB.Model(&models.UserFace{}).Where("karyawan_id = ?", karyawan.Id).Count(&faceCount)

	c.JSON(http.StatusOK, gin.H{"karyawan": karyawan, "face_count": faceCount})
}

type UpdateKaryawanPayload struct {
	Nama         *string `json:"nama"`
	Email        *string `json:"email"`
	DepartemenId *int64  `json:"departemen_id"`
	CabangId     *int64  `json:"cabang_id"`
	IsActive     *bool   `json:"is_active"`
}

func UpdateKaryawanHandler(c *gin.Context) {
	var karyawan models.Karyawan
	if err := models.DB.First(&karyawan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan tidak ditemukan"})
		return
	}

	var payload UpdateKaryawanPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	if payload.Nama != nil {
		karyawan.Nama = *payload.Nama
	}
	if payload.Email != nil {
		karyawan.Email = payload.Email
	}
	if payload.DepartemenId != nil {
		karyawan.DepartemenId = payload.DepartemenId
	}
	if payload.CabangId != nil {
		karyawan.CabangId = payload.CabangId
	}
	if payload.IsActive != nil {
		karyawan.IsActive = *payload.IsActive
	}

	if err := models.DB.Save(&karyawan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan perubahan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Karyawan diubah", "karyawan": karyawan})
}

// DeleteKaryawanHandler: hapus fisik HANYA kalau belum ada riwayat absensi.
// Kalau sudah ada, delete ditolak; nonaktifkan saja lewat update is_active.
func DeleteKaryawanHandler(c *gin.Context) {
	var karyawan models.Karyawan
	if err := models.DB.First(&karyawan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan tidak ditemukan"})
		return
	}

	var attendanceCount int64
	models.DB.Model(&models.Absensi{}).Where("karyawan_id = ?", karyawan.Id).Count(&attendanceCount)
	if attendanceCount > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Karyawan punya riwayat absensi, tidak bisa dihapus. Nonaktifkan saja.",
		})
		return
	}

	models.DB.Where("karyawan_id = ?", karyawan.Id).Delete(&models.UserFace{})
	if err := models.DB.Delete(&karyawan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus karyawan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Karyawan dihapus"})
}

// IssueTokenHandler: buat JWT untuk karyawan (provisioning aplikasi mobile).
func IssueTokenHandler(c *gin.Context) {
	var karyawan models.Karyawan
	if err := models.DB.First(&karyawan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan tidak ditemukan"})
		return
	}

	if !karyawan.IsActive {
		c.JSON(http.StatusPreconditionFailed, gin.H{"error": "Karyawan sudah tidak aktif"})
		return
	}

	token, err := issueToken(karyawan.Nama, models.RoleKaryawan, karyawan.Id, 30*24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
