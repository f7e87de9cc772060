package admin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"PRESENSI/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMasterTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gagal buka sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("gagal ambil sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := models.Migrate(db); err != nil {
		t.Fatalf("gagal migrasi: %v", err)
	}
	models.DB = db

	router := gin.New()
	router.PUT("/departemen/:id", UpdateDepartemenHandler)
	return router
}

func putJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestUpdateDepartemenKodeClash(t *testing.T) {
	router := setupMasterTest(t)

	ops := models.Departemen{Nama: "Operasional", Kode: "OPS"}
	hrd := models.Departemen{Nama: "HRD", Kode: "HRD"}
	models.DB.Create(&ops)
	models.DB.Create(&hrd)

	// Pindah ke kode milik departemen lain -> Conflict
	resp := putJSON(router, "/departemen/2", `{"nama":"HRD","kode":"OPS"}`)
	if resp.Code != http.StatusConflict {
		t.Errorf("status = %d; want 409 untuk kode bentrok. body: %s", resp.Code, resp.Body.String())
	}

	var unchanged models.Departemen
	models.DB.First(&unchanged, hrd.Id)
	if unchanged.Kode != "HRD" {
		t.Errorf("Kode = %q; tidak boleh berubah saat bentrok", unchanged.Kode)
	}
}

func TestUpdateDepartemenKeepsOwnKode(t *testing.T) {
	router := setupMasterTest(t)

	ops := models.Departemen{Nama: "Operasional", Kode: "OPS"}
	models.DB.Create(&ops)

	// Ganti nama sambil mempertahankan kode sendiri -> bukan bentrok
	resp := putJSON(router, "/departemen/1", `{"nama":"Operasional Pusat","kode":"OPS"}`)
	if resp.Code != http.StatusOK {
		t.Errorf("status = %d; want 200. body: %s", resp.Code, resp.Body.String())
	}

	var updated models.Departemen
	models.DB.First(&updated, ops.Id)
	if updated.Nama != "Operasional Pusat" {
		t.Errorf("Nama = %q; want Operasional Pusat", updated.Nama)
	}
}
