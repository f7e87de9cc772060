package absen

import (
	"sync"
	"testing"
	"time"

	"PRESENSI/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite: %v", err)
	}

	// Satu koneksi saja supaya semua query menunjuk ke memory DB yang sama
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("gagal ambil sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.Migrate(db); err != nil {
		t.Fatalf("gagal migrasi: %v", err)
	}
	return db
}

func seedUserWithSchedule(t *testing.T, db *gorm.DB, checkIn, checkOut string) models.Karyawan {
	t.Helper()

	departemen := models.Departemen{Nama: "Operasional", Kode: "OPS"}
	if err := db.Create(&departemen).Error; err != nil {
		t.Fatalf("seed departemen: %v", err)
	}

	jadwal := models.JadwalKerja{
		DepartemenId: departemen.Id,
		Nama:         "Shift Pagi",
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		IsActive:     true,
	}
	if err := db.Create(&jadwal).Error; err != nil {
		t.Fatalf("seed jadwal: %v", err)
	}

	karyawan := models.Karyawan{Nama: "Budi", DepartemenId: &departemen.Id, IsActive: true}
	if err := db.Create(&karyawan).Error; err != nil {
		t.Fatalf("seed karyawan: %v", err)
	}
	return karyawan
}

// 08:15 WIB = 01:15 UTC
func utcForLocal(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour-7, minute, 0, 0, time.UTC)
}

func countRows(t *testing.T, db *gorm.DB, karyawanId int64, attendanceType string) int64 {
	t.Helper()
	var count int64
	db.Model(&models.Absensi{}).
		Where("karyawan_id = ? AND type = ?", karyawanId, attendanceType).
		Count(&count)
	return count
}

func TestCheckInWritesLateness(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	record, err := CreateCheckIn(db, user, utcForLocal(8, 15), AttendanceMeta{}, false)
	if err != nil {
		t.Fatalf("CreateCheckIn error: %v", err)
	}

	if record.IsLate == nil || !*record.IsLate {
		t.Error("IsLate harus true untuk check-in 08:15 dengan jadwal 08:00")
	}
	if record.LateMinutes == nil || *record.LateMinutes != 15 {
		t.Errorf("LateMinutes = %v; want 15", record.LateMinutes)
	}
	if record.ScheduledTime == nil || *record.ScheduledTime != "08:00" {
		t.Errorf("ScheduledTime = %v; want 08:00", record.ScheduledTime)
	}
}

func TestCheckInOnTimeLeavesLatenessUnset(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	record, err := CreateCheckIn(db, user, utcForLocal(7, 59), AttendanceMeta{}, false)
	if err != nil {
		t.Fatalf("CreateCheckIn error: %v", err)
	}

	// Tidak telat = pasangan nullable kosong, bukan telat 0 menit
	if record.IsLate != nil {
		t.Errorf("IsLate = %v; want nil", *record.IsLate)
	}
	if record.LateMinutes != nil {
		t.Errorf("LateMinutes = %v; want nil", *record.LateMinutes)
	}
}

func TestCheckInIdempotentPerDay(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	if _, err := CreateCheckIn(db, user, utcForLocal(8, 0), AttendanceMeta{}, false); err != nil {
		t.Fatalf("check-in pertama error: %v", err)
	}

	_, err := CreateCheckIn(db, user, utcForLocal(9, 0), AttendanceMeta{}, false)
	if err != ErrAlreadyCheckedIn {
		t.Errorf("check-in kedua = %v; want ErrAlreadyCheckedIn", err)
	}

	if got := countRows(t, db, user.Id, models.AttendanceCheckIn); got != 1 {
		t.Errorf("jumlah baris CHECK_IN = %d; want 1", got)
	}
}

func TestCheckOutRequiresCheckIn(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	_, err := CreateCheckOut(db, user, utcForLocal(17, 0), AttendanceMeta{}, false)
	if err != ErrNotCheckedIn {
		t.Errorf("checkout tanpa check-in = %v; want ErrNotCheckedIn", err)
	}

	if got := countRows(t, db, user.Id, models.AttendanceCheckOut); got != 0 {
		t.Errorf("jumlah baris CHECK_OUT = %d; want 0 (tidak boleh ada baris tertulis)", got)
	}
}

func TestCheckOutEarlyAndTerminal(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	if _, err := CreateCheckIn(db, user, utcForLocal(8, 0), AttendanceMeta{}, false); err != nil {
		t.Fatalf("check-in error: %v", err)
	}

	record, err := CreateCheckOut(db, user, utcForLocal(16, 45), AttendanceMeta{}, false)
	if err != nil {
		t.Fatalf("checkout error: %v", err)
	}
	if record.IsEarlyCheckout == nil || !*record.IsEarlyCheckout {
		t.Error("IsEarlyCheckout harus true untuk 16:45 dengan jadwal 17:00")
	}
	if record.EarlyMinutes == nil || *record.EarlyMinutes != 15 {
		t.Errorf("EarlyMinutes = %v; want 15", record.EarlyMinutes)
	}

	// CHECKED_OUT terminal untuk hari itu
	_, err = CreateCheckOut(db, user, utcForLocal(17, 30), AttendanceMeta{}, false)
	if err != ErrAlreadyCheckedOut {
		t.Errorf("checkout kedua = %v; want ErrAlreadyCheckedOut", err)
	}
	if got := countRows(t, db, user.Id, models.AttendanceCheckOut); got != 1 {
		t.Errorf("jumlah baris CHECK_OUT = %d; want 1", got)
	}
}

func TestCheckOutAfterScheduleNotEarly(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	if _, err := CreateCheckIn(db, user, utcForLocal(8, 0), AttendanceMeta{}, false); err != nil {
		t.Fatalf("check-in error: %v", err)
	}

	record, err := CreateCheckOut(db, user, utcForLocal(17, 5), AttendanceMeta{}, false)
	if err != nil {
		t.Fatalf("checkout error: %v", err)
	}
	if record.IsEarlyCheckout != nil {
		t.Errorf("IsEarlyCheckout = %v; want nil untuk pulang 17:05", *record.IsEarlyCheckout)
	}
}

func TestDeviceFlowRequiresSchedule(t *testing.T) {
	db := newTestDB(t)

	// Karyawan tanpa departemen = tidak mungkin punya jadwal
	user := models.Karyawan{Nama: "Tanpa Jadwal", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed karyawan: %v", err)
	}

	// Alur device (requireSchedule=true) ditolak
	_, err := CreateCheckIn(db, user, utcForLocal(8, 0), AttendanceMeta{}, true)
	if err != ErrNoSchedule {
		t.Errorf("device check-in tanpa jadwal = %v; want ErrNoSchedule", err)
	}

	// Alur login (requireSchedule=false) tetap boleh, tanpa info telat
	record, err := CreateCheckIn(db, user, utcForLocal(8, 0), AttendanceMeta{}, false)
	if err != nil {
		t.Fatalf("check-in tanpa jadwal (alur login) error: %v", err)
	}
	if record.ScheduledTime != nil {
		t.Errorf("ScheduledTime = %v; want nil tanpa jadwal", *record.ScheduledTime)
	}
}

func TestConcurrentCheckInOnlyOneWins(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	var wg sync.WaitGroup
	successes := make(chan struct{}, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := CreateCheckIn(db, user, utcForLocal(8, 0), AttendanceMeta{}, false); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	if got := len(successes); got != 1 {
		t.Errorf("check-in sukses = %d; want tepat 1", got)
	}
	if got := countRows(t, db, user.Id, models.AttendanceCheckIn); got != 1 {
		t.Errorf("jumlah baris CHECK_IN = %d; want 1", got)
	}
}

func TestCheckInAddsHolidayNote(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithSchedule(t, db, "08:00", "17:00")

	libur := models.HariLibur{Tanggal: "2025-03-10", Nama: "Hari Raya"}
	if err := db.Create(&libur).Error; err != nil {
		t.Fatalf("seed hari libur: %v", err)
	}

	record, err := CreateCheckIn(db, user, utcForLocal(8, 0), AttendanceMeta{}, false)
	if err != nil {
		t.Fatalf("check-in error: %v", err)
	}
	if record.Notes == nil || *record.Notes != "Hari libur: Hari Raya" {
		t.Errorf("Notes = %v; want catatan hari libur", record.Notes)
	}
}
