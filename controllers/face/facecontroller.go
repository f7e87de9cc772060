package face

import (
	"encoding/json"
	"net/http"

	"PRESENSI/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Struct untuk validasi input dari aplikasi Android
type RegisterFacePayload struct {
	Embedding []float64 `json:"embedding" binding:"required"`
}

// RegisterFaceHandler menambah satu angle wajah untuk user yang sedang login.
func RegisterFaceHandler(c *gin.Context) {
	// 1. Ambil Data User yang sedang Login (Dari Middleware JWT)
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Karyawan)

	// 2. Validasi Input JSON
	var payload RegisterFacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data wajah tidak valid: " + err.Error()})
		return
	}

	// 3. Validasi Dimensi Vektor
	if len(payload.Embedding) != models.EmbeddingDim {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dimensi vektor wajah salah."})
		return
	}

	// 4. Konversi Array Float ke JSON String
	embeddingJSON, err := json.Marshal(payload.Embedding)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses data wajah"})
		return
	}

	// 5. SIMPAN DATA (APPEND MODE)
	// Kita selalu INSERT data baru, tidak menimpa yang lama.
	// Ini memungkinkan satu user memiliki banyak angle wajah.
	newFace := models.UserFace{
		KaryawanId: currentUser.Id,
		Name:       currentUser.Nama,
		Embedding:  embeddingJSON,
	}

	if err := models.DB.Create(&newFace).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan data wajah"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Angle wajah berhasil disimpan!"})
}

// Fungsi Cek Status Wajah
func CheckFaceStatusHandler(c *gin.Context) {
	userData, _ := c.Get("currentUser")
	currentUser := userData.(models.Karyawan)

	var count int64
	// Hitung berapa banyak sampel wajah yang dimiliki user ini
	models.DB.Model(&models.UserFace{}).Where("karyawan_id = ?", currentUser.Id).Count(&count)

	// Dianggap terdaftar jika minimal punya 1 sampel
	c.JSON(http.StatusOK, gin.H{
		"is_registered": count > 0,
		"face_count":    count,
	})
}

type ReplaceFacePayload struct {
	Embeddings [][]float64 `json:"embeddings" binding:"required,min=1"`
}

// ReplaceFaceHandler (admin): buang semua sampel lama seorang karyawan dan
// ganti dengan set baru. Dipakai kalau wajah user berubah drastis atau
// sampel lamanya jelek.
func ReplaceFaceHandler(c *gin.Context) {
	var karyawan models.Karyawan
	if err := models.DB.First(&karyawan, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Karyawan tidak ditemukan"})
		return
	}

	var payload ReplaceFacePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data wajah tidak valid: " + err.Error()})
		return
	}
	for _, emb := range payload.Embeddings {
		if len(emb) != models.EmbeddingDim {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dimensi vektor wajah salah."})
			return
		}
	}

	// Hapus + insert dalam satu transaksi supaya scan yang berjalan bersamaan
	// tidak melihat set wajah setengah jadi.
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("karyawan_id = ?", karyawan.Id).Delete(&models.UserFace{}).Error; err != nil {
			return err
		}
		// Kolom legacy ikut dikosongkan, sumber kebenaran pindah ke user_faces
		if err := tx.Model(&karyawan).Update("legacy_embedding", nil).Error; err != nil {
			return err
		}
		for _, emb := range payload.Embeddings {
			raw, err := json.Marshal(emb)
			if err != nil {
				return err
			}
			face := models.UserFace{KaryawanId: karyawan.Id, Name: karyawan.Nama, Embedding: raw}
			if err := tx.Create(&face).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengganti data wajah"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Data wajah berhasil diganti", "face_count": len(payload.Embeddings)})
}
