package models

import "time"

const (
	AttendanceCheckIn  = "CHECK_IN"
	AttendanceCheckOut = "CHECK_OUT"
)

// Absensi immutable setelah dibuat: satu baris per (karyawan, tipe, tanggal).
// Shape kolom ini dipakai juga oleh sistem pelaporan, jangan diubah sembarangan.
type Absensi struct {
	Id         int64     `gorm:"primaryKey" json:"id"`
	KaryawanId int64     `gorm:"index:idx_absensi_harian" json:"karyawan_id"`
	Type       string    `gorm:"size:20;index:idx_absensi_harian" json:"type"`
	TglAbsen   string    `gorm:"size:10;index:idx_absensi_harian" json:"tgl_absen"` // "2006-01-02" waktu lokal
	Timestamp  time.Time `json:"timestamp"`
	Similarity *float64  `json:"similarity"`

	// Pasangan nullable: nil berarti "tidak telat", bukan telat 0 menit.
	IsLate      *bool `json:"is_late"`
	LateMinutes *int  `json:"late_minutes"`

	IsEarlyCheckout *bool `json:"is_early_checkout"`
	EarlyMinutes    *int  `json:"early_minutes"`

	ScheduledTime *string `gorm:"size:5" json:"scheduled_time"` // "HH:MM"
	Notes         *string `json:"notes"`
	FaceImageUrl  *string `json:"face_image_url"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Karyawan *Karyawan `gorm:"foreignKey:KaryawanId" json:"karyawan,omitempty"`
}

func (Absensi) TableName() string {
	return "absensi"
}

// JadwalKerja per departemen; paling banyak satu yang aktif.
type JadwalKerja struct {
	Id           int64     `gorm:"primaryKey" json:"id"`
	DepartemenId int64     `gorm:"index" json:"departemen_id"`
	Nama         string    `gorm:"size:100" json:"nama"`
	CheckInTime  string    `gorm:"size:5" json:"check_in_time"`  // "HH:MM"
	CheckOutTime string    `gorm:"size:5" json:"check_out_time"` // "HH:MM", harus > CheckInTime
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JadwalKerja) TableName() string {
	return "jadwal_kerja"
}

type HariLibur struct {
	Id        int64     `gorm:"primaryKey" json:"id"`
	Tanggal   string    `gorm:"size:10;uniqueIndex" json:"tanggal"` // "2006-01-02"
	Nama      string    `gorm:"size:100" json:"nama"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (HariLibur) TableName() string {
	return "hari_libur"
}
