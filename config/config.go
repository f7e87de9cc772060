package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

// Variable global untuk menyimpan key agar bisa diakses di controller/middleware
var JWT_KEY []byte

// Alamat service Python pengekstrak embedding wajah
var ML_SERVICE_URL string

// Timeout untuk satu kali inferensi gambar di service ML
var ML_TIMEOUT time.Duration

// Alamat listen HTTP server
var APP_ADDR string

// Struct untuk data yang disimpan di dalam Token
type JWTClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	UserId   int64  `json:"user_id"`
	jwt.RegisteredClaims
}

// Fungsi init berjalan otomatis saat aplikasi start
func init() {
	// 1. Coba load file .env (Khusus untuk Local Development di Laptop)
	// Di server produksi file ini biasanya tidak ada, jadi error-nya kita abaikan.
	err := godotenv.Load()
	if err != nil {
		log.Println("Info: File .env tidak ditemukan. Menggunakan System Environment Variable (Mode Produksi).")
	}

	// 2. Ambil key dari Environment. Validasinya di MustValidate (dipanggil
	// dari main), bukan di sini, supaya package ini tetap bisa di-import
	// oleh test tanpa mematikan prosesnya.
	JWT_KEY = []byte(os.Getenv("JWT_KEY"))

	// 4. Konfigurasi lain (punya default, tidak wajib diset)
	ML_SERVICE_URL = os.Getenv("ML_SERVICE_URL")
	if ML_SERVICE_URL == "" {
		ML_SERVICE_URL = "http://localhost:8000"
	}

	ML_TIMEOUT = 30 * time.Second
	if raw := os.Getenv("ML_TIMEOUT_SECONDS"); raw != "" {
		if sec, err := strconv.Atoi(raw); err == nil && sec > 0 {
			ML_TIMEOUT = time.Duration(sec) * time.Second
		}
	}

	APP_ADDR = os.Getenv("APP_ADDR")
	if APP_ADDR == "" {
		APP_ADDR = ":8080"
	}
}

// MustValidate dipanggil sekali saat boot server.
// Jika key kosong (kelupaan setting), matikan aplikasi demi keamanan.
func MustValidate() {
	if len(JWT_KEY) == 0 {
		log.Fatal("FATAL ERROR: JWT_KEY tidak ditemukan di environment variable!")
	}
}
