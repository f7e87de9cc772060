package absen

import (
	"errors"
	"fmt"
	"time"

	"PRESENSI/helper"
	"PRESENSI/models"

	"gorm.io/gorm"
)

// Error domain state machine absensi. Controller yang menerjemahkan ke HTTP.
var (
	ErrAlreadyCheckedIn  = errors.New("sudah melakukan check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("sudah melakukan check-out hari ini")
	ErrNotCheckedIn      = errors.New("harus check-in dulu sebelum check-out")
	ErrNoSchedule        = errors.New("departemen belum punya jadwal kerja aktif")
)

// AttendanceMeta membawa metadata hasil verifikasi wajah ke baris absensi.
type AttendanceMeta struct {
	Similarity   *float64
	FaceImageUrl *string
	Notes        *string
}

// findActiveSchedule mencari jadwal aktif departemen user. nil kalau user
// tidak punya departemen atau departemennya belum dijadwalkan.
func findActiveSchedule(db *gorm.DB, user models.Karyawan) *models.JadwalKerja {
	if user.DepartemenId == nil {
		return nil
	}
	var jadwal models.JadwalKerja
	err := db.Where("departemen_id = ? AND is_active = ?", *user.DepartemenId, true).
		Order("id desc").First(&jadwal).Error
	if err != nil {
		return nil
	}
	return &jadwal
}

// holidayNote menambahkan catatan kalau tanggalnya hari libur nasional.
func holidayNote(db *gorm.DB, tanggal string, notes *string) *string {
	var libur models.HariLibur
	if err := db.Where("tanggal = ?", tanggal).Take(&libur).Error; err != nil {
		return notes
	}
	note := "Hari libur: " + libur.Nama
	if notes != nil && *notes != "" {
		note = *notes + " | " + note
	}
	return &note
}

// CreateCheckIn menulis absensi masuk untuk satu hari kalender (WIB).
// Transisi yang diizinkan cuma NONE -> CHECKED_IN; check-in kedua di hari yang
// sama ditolak. Pengecekan + insert dikunci per (karyawan, tanggal) supaya dua
// request bersamaan tidak sama-sama lolos.
func CreateCheckIn(db *gorm.DB, user models.Karyawan, ts time.Time, meta AttendanceMeta, requireSchedule bool) (*models.Absensi, error) {
	tanggal := helper.LocalDate(ts)

	unlock := helper.LockUserDay(user.Id, tanggal)
	defer unlock()

	jadwal := findActiveSchedule(db, user)
	if requireSchedule && jadwal == nil {
		return nil, ErrNoSchedule
	}

	var existing models.Absensi
	err := db.Where("karyawan_id = ? AND type = ? AND tgl_absen = ?",
		user.Id, models.AttendanceCheckIn, tanggal).Take(&existing).Error
	if err == nil {
		return nil, ErrAlreadyCheckedIn
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("gagal membaca absensi hari ini: %w", err)
	}

	record := models.Absensi{
		KaryawanId:   user.Id,
		Type:         models.AttendanceCheckIn,
		TglAbsen:     tanggal,
		Timestamp:    ts,
		Similarity:   meta.Similarity,
		FaceImageUrl: meta.FaceImageUrl,
		Notes:        holidayNote(db, tanggal, meta.Notes),
	}

	if jadwal != nil {
		info, err := helper.ResolveLateness(jadwal.CheckInTime, ts)
		if err == nil {
			record.ScheduledTime = &info.ScheduledTime
			if info.IsLate {
				isLate := true
				minutes := info.Minutes
				record.IsLate = &isLate
				record.LateMinutes = &minutes
			}
		}
	}

	if err := db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("gagal menyimpan absensi masuk: %w", err)
	}
	return &record, nil
}

// CreateCheckOut menulis absensi pulang. Wajib sudah check-in hari itu, dan
// check-out kedua ditolak (CHECKED_OUT terminal untuk hari tersebut).
func CreateCheckOut(db *gorm.DB, user models.Karyawan, ts time.Time, meta AttendanceMeta, requireSchedule bool) (*models.Absensi, error) {
	tanggal := helper.LocalDate(ts)

	unlock := helper.LockUserDay(user.Id, tanggal)
	defer unlock()

	jadwal := findActiveSchedule(db, user)
	if requireSchedule && jadwal == nil {
		return nil, ErrNoSchedule
	}

	var checkIn models.Absensi
	err := db.Where("karyawan_id = ? AND type = ? AND tgl_absen = ?",
		user.Id, models.AttendanceCheckIn, tanggal).Take(&checkIn).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotCheckedIn
	}
	if err != nil {
		return nil, fmt.Errorf("gagal membaca absensi hari ini: %w", err)
	}

	var existing models.Absensi
	err = db.Where("karyawan_id = ? AND type = ? AND tgl_absen = ?",
		user.Id, models.AttendanceCheckOut, tanggal).Take(&existing).Error
	if err == nil {
		return nil, ErrAlreadyCheckedOut
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("gagal membaca absensi hari ini: %w", err)
	}

	record := models.Absensi{
		KaryawanId:   user.Id,
		Type:         models.AttendanceCheckOut,
		TglAbsen:     tanggal,
		Timestamp:    ts,
		Similarity:   meta.Similarity,
		FaceImageUrl: meta.FaceImageUrl,
		Notes:        meta.Notes,
	}

	if jadwal != nil {
		info, err := helper.ResolveEarliness(jadwal.CheckOutTime, ts)
		if err == nil {
			record.ScheduledTime = &info.ScheduledTime
			if info.IsEarly {
				isEarly := true
				minutes := info.Minutes
				record.IsEarlyCheckout = &isEarly
				record.EarlyMinutes = &minutes
			}
		}
	}

	if err := db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("gagal menyimpan absensi pulang: %w", err)
	}
	return &record, nil
}
