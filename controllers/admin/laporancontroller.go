package admin

import (
	"net/http"
	"time"

	"PRESENSI/models"

	"github.com/gin-gonic/gin"
)

// Rekap per karyawan untuk satu bulan.
type rekapRow struct {
	KaryawanId       int64  `json:"karyawan_id"`
	Nama             string `json:"nama"`
	TotalHadir       int    `json:"total_hadir"`
	TotalTelat       int    `json:"total_telat"`
	TotalPulangCepat int    `json:"total_pulang_cepat"`
	TotalMenitTelat  int    `json:"total_menit_telat"`
}

// MonthlyReportHandler: agregasi absensi per karyawan untuk ?bulan=YYYY-MM.
func MonthlyReportHandler(c *gin.Context) {
	bulan := c.Query("bulan")
	if bulan == "" {
		bulan = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", bulan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Format bulan harus YYYY-MM"})
		return
	}

	var records []models.Absensi
	err := models.DB.Where("tgl_absen LIKE ?", bulan+"-%").
		Order("karyawan_id asc, tgl_absen asc").Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data absensi"})
		return
	}

	var users []models.Karyawan
	if err := models.DB.Order("id asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data karyawan"})
		return
	}
	namaById := map[int64]string{}
	for _, user := range users {
		namaById[user.Id] = user.Nama
	}

	rekapById := map[int64]*rekapRow{}
	var order []int64
	for _, record := range records {
		rekap, ok := rekapById[record.KaryawanId]
		if !ok {
			rekap = &rekapRow{KaryawanId: record.KaryawanId, Nama: namaById[record.KaryawanId]}
			rekapById[record.KaryawanId] = rekap
			order = append(order, record.KaryawanId)
		}

		switch record.Type {
		case models.AttendanceCheckIn:
			rekap.TotalHadir++
			if record.IsLate != nil && *record.IsLate {
				rekap.TotalTelat++
				if record.LateMinutes != nil {
					rekap.TotalMenitTelat += *record.LateMinutes
				}
			}
		case models.AttendanceCheckOut:
			if record.IsEarlyCheckout != nil && *record.IsEarlyCheckout {
				rekap.TotalPulangCepat++
			}
		}
	}

	rows := make([]rekapRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *rekapById[id])
	}

	c.JSON(http.StatusOK, gin.H{"bulan": bulan, "rekap": rows})
}
