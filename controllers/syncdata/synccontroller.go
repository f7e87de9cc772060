package syncdata

import (
	"net/http"

	"PRESENSI/models"

	"github.com/gin-gonic/gin"
)

// ExportFacesHandler: bulk read untuk perangkat yang mau matching offline.
// Per karyawan aktif dikirim seluruh daftar embedding + foto tampilan, plus
// threshold yang berlaku. Perangkat HARUS memakai metrik jarak dan threshold
// yang sama dengan server, kalau tidak keputusannya bakal beda.
func ExportFacesHandler(c *gin.Context) {
	candidates, err := models.LoadCandidateFaces(models.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data wajah"})
		return
	}

	var users []models.Karyawan
	if err := models.DB.Where("is_active = ?", true).Order("id asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data karyawan"})
		return
	}
	fotoById := map[int64]*string{}
	for _, user := range users {
		fotoById[user.Id] = user.FotoUrl
	}

	type exportEntry struct {
		KaryawanId int64       `json:"karyawan_id"`
		Nama       string      `json:"nama"`
		FotoUrl    *string     `json:"foto_url"`
		Embeddings [][]float64 `json:"embeddings"`
	}

	entries := make([]exportEntry, 0, len(candidates))
	for _, cand := range candidates {
		entries = append(entries, exportEntry{
			KaryawanId: cand.KaryawanId,
			Nama:       cand.Nama,
			FotoUrl:    fotoById[cand.KaryawanId],
			Embeddings: cand.Embeddings,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"threshold": models.GetFaceThreshold(models.DB),
		"metric":    "euclidean",
		"users":     entries,
	})
}
