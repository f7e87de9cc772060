package face

import (
	"encoding/json"
	"net/http"
	"time"

	"PRESENSI/helper"
	"PRESENSI/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SubmitRegistrationPayload struct {
	Nama         string      `json:"nama" binding:"required"`
	Email        *string     `json:"email"`
	DepartemenId *int64      `json:"departemen_id"`
	CabangId     *int64      `json:"cabang_id"`
	Embeddings   [][]float64 `json:"embeddings" binding:"required,min=1"`
	ImageUrl     *string     `json:"image_url"`
}

// SubmitRegistrationHandler menerima pendaftaran wajah baru (status PENDING).
// User baru benar-benar dibuat nanti saat admin approve.
func SubmitRegistrationHandler(c *gin.Context) {
	var payload SubmitRegistrationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data registrasi tidak valid: " + err.Error()})
		return
	}

	for _, emb := range payload.Embeddings {
		if len(emb) != models.EmbeddingDim {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Dimensi vektor wajah salah."})
			return
		}
	}

	raw, err := json.Marshal(payload.Embeddings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses data wajah"})
		return
	}

	registration := models.FaceRegistration{
		Nama:         payload.Nama,
		Email:        payload.Email,
		DepartemenId: payload.DepartemenId,
		CabangId:     payload.CabangId,
		Embeddings:   raw,
		ImageUrl:     payload.ImageUrl,
		Status:       models.RegistrationPending,
	}

	if err := models.DB.Create(&registration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan registrasi"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registrasi wajah terkirim, menunggu persetujuan admin",
		"registration": registration,
	})
}

// ListRegistrationsHandler (admin): daftar registrasi, bisa difilter status.
func ListRegistrationsHandler(c *gin.Context) {
	page, size := helper.Pagination(c.Query("page"), c.Query("size"))

	query := models.DB.Model(&models.FaceRegistration{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var registrations []models.FaceRegistration
	err := query.Order("created_at desc").Offset((page - 1) * size).Limit(size).Find(&registrations).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": registrations, "total": total, "page": page, "size": size})
}

// CheckDuplicatesHandler (admin): sebelum approve, cek apakah wajah registrasi
// ini terlalu mirip dengan karyawan yang sudah ada (cosine similarity >= 80%).
// SEMUA kandidat di atas ambang dikembalikan; keputusannya tetap di reviewer.
func CheckDuplicatesHandler(c *gin.Context) {
	var registration models.FaceRegistration
	if err := models.DB.First(&registration, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registrasi tidak ditemukan"})
		return
	}

	vectors := registration.ParseEmbeddings()
	if len(vectors) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data embedding registrasi rusak"})
		return
	}

	pool, err := models.LoadCandidateFaces(models.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data wajah"})
		return
	}

	// Gabungkan hasil semua sampel registrasi, ambil skor tertinggi per user
	bestByUser := map[int64]helper.DuplicateMatch{}
	for _, probe := range vectors {
		for _, match := range helper.FindSimilarFaces(probe, pool) {
			existing, ok := bestByUser[match.KaryawanId]
			if !ok || match.SimilarityPercent > existing.SimilarityPercent {
				bestByUser[match.KaryawanId] = match
			}
		}
	}

	matches := make([]helper.DuplicateMatch, 0, len(bestByUser))
	for _, match := range bestByUser {
		matches = append(matches, match)
	}
	matches = helper.SortDuplicates(matches)

	c.JSON(http.StatusOK, gin.H{
		"registration_id": registration.Id,
		"has_duplicates":  len(matches) > 0,
		"matches":         matches,
	})
}

// ApproveRegistrationHandler (admin): PENDING -> APPROVED.
// Approve MEMBUAT karyawan baru + semua baris user_faces-nya dalam satu
// transaksi.
func ApproveRegistrationHandler(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.AdminUser)

	var registration models.FaceRegistration
	if err := models.DB.First(&registration, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registrasi tidak ditemukan"})
		return
	}

	if registration.Status != models.RegistrationPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Registrasi sudah diputuskan (" + registration.Status + ")"})
		return
	}

	vectors := registration.ParseEmbeddings()
	if len(vectors) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data embedding registrasi rusak"})
		return
	}

	var karyawan models.Karyawan
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		karyawan = models.Karyawan{
			Nama:         registration.Nama,
			Email:        registration.Email,
			DepartemenId: registration.DepartemenId,
			CabangId:     registration.CabangId,
			IsActive:     true,
			FotoUrl:      registration.ImageUrl,
		}
		if err := tx.Create(&karyawan).Error; err != nil {
			return err
		}

		for _, emb := range vectors {
			raw, err := json.Marshal(emb)
			if err != nil {
				return err
			}
			face := models.UserFace{KaryawanId: karyawan.Id, Name: karyawan.Nama, Embedding: raw}
			if err := tx.Create(&face).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		registration.Status = models.RegistrationApproved
		registration.ReviewedBy = &admin.Id
		registration.ReviewedAt = &now
		registration.KaryawanId = &karyawan.Id
		return tx.Save(&registration).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyetujui registrasi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Registrasi disetujui, karyawan dibuat",
		"karyawan": karyawan,
	})
}

type RejectRegistrationPayload struct {
	Reason string `json:"reason" binding:"required,min=10"`
}

// RejectRegistrationHandler (admin): PENDING -> REJECTED (terminal).
// Alasan wajib diisi minimal 10 karakter supaya pendaftar dapat penjelasan.
func RejectRegistrationHandler(c *gin.Context) {
	adminData, _ := c.Get("currentAdmin")
	admin := adminData.(models.AdminUser)

	var payload RejectRegistrationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Alasan penolakan wajib diisi (min. 10 karakter)"})
		return
	}

	var registration models.FaceRegistration
	if err := models.DB.First(&registration, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registrasi tidak ditemukan"})
		return
	}

	if registration.Status != models.RegistrationPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Registrasi sudah diputuskan (" + registration.Status + ")"})
		return
	}

	now := time.Now()
	registration.Status = models.RegistrationRejected
	registration.ReviewedBy = &admin.Id
	registration.ReviewedAt = &now
	registration.RejectReason = &payload.Reason

	if err := models.DB.Save(&registration).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menolak registrasi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registrasi ditolak"})
}
