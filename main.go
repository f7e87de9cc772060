package main

import (
	"log"
	"time"

	"PRESENSI/config"
	"PRESENSI/controllers/absen"
	"PRESENSI/controllers/admin"
	"PRESENSI/controllers/audit"
	"PRESENSI/controllers/face"
	"PRESENSI/controllers/settings"
	"PRESENSI/controllers/syncdata"
	"PRESENSI/middleware"
	"PRESENSI/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
)

func main() {
	config.MustValidate()
	models.ConnectDatabase()

	// Job harian: pangkas log face match attempt yang sudah lewat retensi
	scheduler := gocron.NewScheduler(time.UTC)
	_, err := scheduler.Every(1).Day().At("18:30").Do(func() { // 01:30 WIB
		if _, err := audit.PruneOlderThan(audit.DefaultRetentionDays); err != nil {
			log.Printf("Job retensi gagal: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Gagal mendaftarkan job retensi: %v", err)
	}
	scheduler.StartAsync()

	router := gin.Default()
	router.Use(cors.Default())

	// ===== PUBLIK =====
	router.POST("/api/admin/login", admin.LoginHandler)
	router.POST("/api/registrations", face.SubmitRegistrationHandler)
	// Endpoint kiosk: identitas dari wajah, tanpa login
	router.POST("/api/device/scan", absen.DeviceScanHandler)
	router.GET("/api/device/sync", syncdata.ExportFacesHandler)

	// ===== KARYAWAN (JWT) =====
	user := router.Group("/api", middleware.RequireAuth())
	{
		user.POST("/faces", face.RegisterFaceHandler)
		user.GET("/faces/status", face.CheckFaceStatusHandler)
		user.POST("/absen/verify", absen.VerifyHandler)
		user.GET("/absen/history", absen.GetHistoryUser)
		user.GET("/absen/today", absen.GetTodayStatus)
	}

	// ===== ADMIN (JWT admin) =====
	adm := router.Group("/api/admin", middleware.RequireAdmin())
	{
		adm.GET("/admins", admin.ListAdminsHandler)
		adm.POST("/admins", admin.CreateAdminHandler)
		adm.PUT("/admins/:id", admin.UpdateAdminHandler)

		adm.GET("/karyawan", admin.ListKaryawanHandler)
		adm.GET("/karyawan/:id", admin.GetKaryawanHandler)
		adm.PUT("/karyawan/:id", admin.UpdateKaryawanHandler)
		adm.DELETE("/karyawan/:id", admin.DeleteKaryawanHandler)
		adm.POST("/karyawan/:id/token", admin.IssueTokenHandler)
		adm.PUT("/karyawan/:id/face", face.ReplaceFaceHandler)

		adm.GET("/registrations", face.ListRegistrationsHandler)
		adm.GET("/registrations/:id/duplicates", face.CheckDuplicatesHandler)
		adm.POST("/registrations/:id/approve", face.ApproveRegistrationHandler)
		adm.POST("/registrations/:id/reject", face.RejectRegistrationHandler)

		adm.GET("/departemen", admin.ListDepartemenHandler)
		adm.POST("/departemen", admin.CreateDepartemenHandler)
		adm.PUT("/departemen/:id", admin.UpdateDepartemenHandler)
		adm.DELETE("/departemen/:id", admin.DeleteDepartemenHandler)

		adm.GET("/cabang", admin.ListCabangHandler)
		adm.POST("/cabang", admin.CreateCabangHandler)
		adm.PUT("/cabang/:id", admin.UpdateCabangHandler)
		adm.DELETE("/cabang/:id", admin.DeleteCabangHandler)

		adm.GET("/jadwal", admin.ListJadwalHandler)
		adm.POST("/jadwal", admin.CreateJadwalHandler)
		adm.PUT("/jadwal/:id", admin.UpdateJadwalHandler)
		adm.DELETE("/jadwal/:id", admin.DeleteJadwalHandler)

		adm.GET("/hari-libur", admin.ListHariLiburHandler)
		adm.POST("/hari-libur", admin.CreateHariLiburHandler)
		adm.DELETE("/hari-libur/:id", admin.DeleteHariLiburHandler)

		adm.GET("/absen", absen.GetAllAbsen)
		adm.GET("/laporan/bulanan", admin.MonthlyReportHandler)

		adm.GET("/settings/threshold", settings.GetThresholdHandler)
		adm.PUT("/settings/threshold", settings.UpdateThresholdHandler)

		adm.GET("/match-attempts", audit.ListAttemptsHandler)
		adm.GET("/match-attempts/:id", audit.GetAttemptHandler)
		adm.DELETE("/match-attempts", audit.PruneAttemptsHandler)
	}

	log.Println("Server jalan di " + config.APP_ADDR)
	if err := router.Run(config.APP_ADDR); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
