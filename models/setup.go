package models

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	// 1. Coba load file .env (Khusus lokal)
	// Di server produksi file ini ga ada, jadi errornya kita abaikan.
	_ = godotenv.Load()

	// 2. Ambil variabel dari System Environment
	dbURL := os.Getenv("DATABASE_URL")

	// 3. Baru cek di sini. Kalau variabelnya kosong, baru boleh panic.
	if dbURL == "" {
		log.Fatal("FATAL ERROR: Variable DATABASE_URL tidak ditemukan!")
	}

	// 4. Konek ke Database
	db, err := gorm.Open(mysql.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Gagal Terhubung ke Database: %v", err)
	}

	log.Println("Koneksi Database Berhasil.")
	DB = db

	// 5. Sinkronisasi skema
	if err := Migrate(db); err != nil {
		log.Fatalf("Gagal migrasi skema database: %v", err)
	}
}

// Migrate dipisah supaya test bisa pakai database sendiri (sqlite in-memory).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Departemen{},
		&Cabang{},
		&Karyawan{},
		&UserFace{},
		&FaceRegistration{},
		&JadwalKerja{},
		&HariLibur{},
		&Absensi{},
		&FaceMatchAttempt{},
		&Setting{},
		&AdminUser{},
	)
}
