package absen

import (
	"context"
	"net/http"
	"time"

	"PRESENSI/helper"
	"PRESENSI/models"
	"PRESENSI/services"

	"github.com/gin-gonic/gin"
)

// Payload fleksibel: aplikasi baru mengirim vektor hasil ekstraksi on-device,
// aplikasi lama mengirim gambar mentah yang kita teruskan ke service ML.
type VerifyPayload struct {
	Type        string    `json:"type" binding:"required,oneof=CHECK_IN CHECK_OUT"`
	Embedding   []float64 `json:"embedding"`
	ImageBase64 string    `json:"image_base64"`
	Notes       *string   `json:"notes"`
}

// resolveProbe menentukan bentuk input SEKALI di pintu masuk: vektor langsung
// dipakai, gambar diekstrak dulu lewat service ML. Logika di bawahnya tidak
// perlu tahu bentuk aslinya.
func resolveProbe(ctx context.Context, payload VerifyPayload) ([]float64, string, bool) {
	if len(payload.Embedding) > 0 {
		if len(payload.Embedding) != models.EmbeddingDim {
			return nil, "Dimensi vektor wajah salah.", false
		}
		return payload.Embedding, "", true
	}

	if payload.ImageBase64 != "" {
		embedding, err := services.ExtractEmbedding(ctx, payload.ImageBase64)
		if err != nil {
			return nil, "Gagal mengekstrak data wajah dari gambar.", false
		}
		return embedding, "", true
	}

	return nil, "Kirim embedding atau image_base64.", false
}

// writeStateMachineError menerjemahkan error domain ke payload terstruktur,
// supaya aplikasi device bisa branching pakai field code tanpa parsing pesan.
func writeStateMachineError(c *gin.Context, err error) {
	switch err {
	case ErrAlreadyCheckedIn:
		c.JSON(http.StatusConflict, gin.H{"code": "ALREADY_CHECKED_IN", "error": err.Error()})
	case ErrAlreadyCheckedOut:
		c.JSON(http.StatusConflict, gin.H{"code": "ALREADY_CHECKED_OUT", "error": err.Error()})
	case ErrNotCheckedIn:
		c.JSON(http.StatusPreconditionFailed, gin.H{"code": "NOT_CHECKED_IN", "error": err.Error()})
	case ErrNoSchedule:
		c.JSON(http.StatusPreconditionFailed, gin.H{"code": "NO_SCHEDULE", "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "error": err.Error()})
	}
}

// VerifyHandler: alur absensi untuk user yang SUDAH login (JWT). Wajah probe
// dicocokkan hanya dengan sampel milik user itu sendiri. Jadwal kerja tidak
// diwajibkan di alur ini (beda dengan alur device, lihat DeviceScanHandler).
func VerifyHandler(c *gin.Context) {
	// 1. Bind JSON dari aplikasi
	var payload VerifyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_PAYLOAD", "error": "Input tidak valid: " + err.Error()})
		return
	}

	// 2. Ambil Data User Login
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Karyawan)

	// 3. Normalisasi input jadi vektor
	probe, msg, ok := resolveProbe(c.Request.Context(), payload)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_PAYLOAD", "error": msg})
		return
	}

	// 4. Ambil SEMUA sampel wajah user (sekali baca, biar konsisten)
	candidates, err := models.CandidateFacesForUser(models.DB, currentUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data wajah."})
		return
	}
	if len(candidates[0].Embeddings) == 0 {
		c.JSON(http.StatusPreconditionFailed, gin.H{
			"code":  "FACE_NOT_REGISTERED",
			"error": "Wajah Anda belum didaftarkan. Silakan daftar wajah dulu.",
		})
		return
	}

	// 5. Cocokkan + catat attempt (sukses maupun gagal)
	threshold := models.GetFaceThreshold(models.DB)
	result := helper.MatchBest(probe, candidates)
	matched := result.Found && helper.WithinThreshold(result.Best.Distance, threshold)

	models.LogMatchAttempt(models.DB, "VERIFY_"+payload.Type, result, threshold, matched)

	if !matched {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":  "FACE_NOT_RECOGNIZED",
			"error": "Wajah tidak dikenali.",
		})
		return
	}

	// 6. Jalankan state machine absensi
	similarity := result.Best.Similarity
	meta := AttendanceMeta{Similarity: &similarity, Notes: payload.Notes}

	var record *models.Absensi
	now := time.Now()
	if payload.Type == models.AttendanceCheckIn {
		record, err = CreateCheckIn(models.DB, currentUser, now, meta, false)
	} else {
		record, err = CreateCheckOut(models.DB, currentUser, now, meta, false)
	}
	if err != nil {
		writeStateMachineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Absensi " + payload.Type + " berhasil",
		"absensi": record,
	})
}

// DeviceScanHandler: alur absensi dari perangkat kiosk TANPA login. Identitas
// ditentukan murni dari wajah: probe dibandingkan ke seluruh populasi karyawan
// aktif. Alur ini LEBIH ketat dari VerifyHandler: user hasil match wajib punya
// jadwal kerja aktif sebelum absensinya ditulis.
func DeviceScanHandler(c *gin.Context) {
	var payload VerifyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_PAYLOAD", "error": "Input tidak valid: " + err.Error()})
		return
	}

	probe, msg, ok := resolveProbe(c.Request.Context(), payload)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_PAYLOAD", "error": msg})
		return
	}

	// Populasi kandidat: semua karyawan aktif + seluruh sampelnya
	candidates, err := models.LoadCandidateFaces(models.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data wajah."})
		return
	}

	threshold := models.GetFaceThreshold(models.DB)
	result := helper.MatchBest(probe, candidates)
	matched := result.Found && helper.WithinThreshold(result.Best.Distance, threshold)

	// Attempt SELALU dicatat, juga kalau state machine nanti menolak
	models.LogMatchAttempt(models.DB, "DEVICE_"+payload.Type, result, threshold, matched)

	if !matched {
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":  "FACE_NOT_RECOGNIZED",
			"error": "Wajah tidak dikenali.",
		})
		return
	}

	var matchedUser models.Karyawan
	if err := models.DB.First(&matchedUser, result.Best.KaryawanId).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data karyawan."})
		return
	}

	similarity := result.Best.Similarity
	meta := AttendanceMeta{Similarity: &similarity, Notes: payload.Notes}

	var record *models.Absensi
	now := time.Now()
	if payload.Type == models.AttendanceCheckIn {
		record, err = CreateCheckIn(models.DB, matchedUser, now, meta, true)
	} else {
		record, err = CreateCheckOut(models.DB, matchedUser, now, meta, true)
	}
	if err != nil {
		writeStateMachineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Absensi " + payload.Type + " berhasil",
		"karyawan": gin.H{"id": matchedUser.Id, "nama": matchedUser.Nama},
		"absensi":  record,
	})
}

func GetHistoryUser(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Karyawan)

	var history []models.Absensi
	err := models.DB.Where("karyawan_id = ?", currentUser.Id).
		Order("tgl_absen DESC, timestamp DESC").Find(&history).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil riwayat absensi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GetTodayStatus mengembalikan posisi user di state machine hari ini.
func GetTodayStatus(c *gin.Context) {
	userData, exists := c.Get("currentUser")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
		return
	}
	currentUser := userData.(models.Karyawan)

	tanggal := helper.LocalDate(time.Now())

	var todays []models.Absensi
	err := models.DB.Where("karyawan_id = ? AND tgl_absen = ?", currentUser.Id, tanggal).
		Order("timestamp asc").Find(&todays).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil absensi hari ini"})
		return
	}

	status := "NONE"
	for _, row := range todays {
		if row.Type == models.AttendanceCheckOut {
			status = "CHECKED_OUT"
			break
		}
		if row.Type == models.AttendanceCheckIn {
			status = "CHECKED_IN"
		}
	}

	c.JSON(http.StatusOK, gin.H{"tanggal": tanggal, "status": status, "records": todays})
}

// GetAllAbsen (admin): daftar absensi terbaru, paginasi sederhana.
func GetAllAbsen(c *gin.Context) {
	page, size := helper.Pagination(c.Query("page"), c.Query("size"))

	query := models.DB.Model(&models.Absensi{}).Preload("Karyawan")
	if tanggal := c.Query("tanggal"); tanggal != "" {
		query = query.Where("tgl_absen = ?", tanggal)
	}
	if karyawanId := c.Query("karyawan_id"); karyawanId != "" {
		query = query.Where("karyawan_id = ?", karyawanId)
	}

	var total int64
	query.Count(&total)

	var absensi []models.Absensi
	err := query.Order("timestamp desc").Offset((page - 1) * size).Limit(size).Find(&absensi).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"absen": absensi, "total": total, "page": page, "size": size})
}
