package admin

import (
	"net/http"
	"time"

	"PRESENSI/config"
	"PRESENSI/helper"
	"PRESENSI/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler: login admin dashboard, balasannya JWT.
func LoginHandler(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email dan password wajib diisi"})
		return
	}

	var admin models.AdminUser
	err := models.DB.Where("email = ?", payload.Email).Take(&admin).Error
	if err != nil || !admin.IsActive {
		// Pesan sengaja sama untuk email salah & akun nonaktif
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email atau password salah"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(payload.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email atau password salah"})
		return
	}

	token, err := issueToken(admin.Email, admin.Role, admin.Id, 12*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{"id": admin.Id, "nama": admin.Nama, "email": admin.Email, "role": admin.Role},
	})
}

func issueToken(username, role string, userId int64, ttl time.Duration) (string, error) {
	claims := config.JWTClaims{
		Username: username,
		Role:     role,
		UserId:   userId,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWT_KEY)
}

type CreateAdminPayload struct {
	Nama     string `json:"nama" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=ADMIN SUPER_ADMIN"`
}

// CreateAdminHandler: tambah admin baru. Email unik, bentrok -> 409.
func CreateAdminHandler(c *gin.Context) {
	var payload CreateAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	var existing models.AdminUser
	if err := models.DB.Where("email = ?", payload.Email).Take(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email sudah terdaftar"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses password"})
		return
	}

	role := payload.Role
	if role == "" {
		role = models.RoleAdmin
	}

	admin := models.AdminUser{
		Nama:         payload.Nama,
		Email:        payload.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := models.DB.Create(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan admin"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Admin berhasil dibuat", "admin": admin})
}

func ListAdminsHandler(c *gin.Context) {
	page, size := helper.Pagination(c.Query("page"), c.Query("size"))

	var total int64
	models.DB.Model(&models.AdminUser{}).Count(&total)

	var admins []models.AdminUser
	err := models.DB.Order("created_at desc").Offset((page - 1) * size).Limit(size).Find(&admins).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"admins": admins, "total": total, "page": page, "size": size})
}

type UpdateAdminPayload struct {
	Nama     *string `json:"nama"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	IsActive *bool   `json:"is_active"`
}

func UpdateAdminHandler(c *gin.Context) {
	var admin models.AdminUser
	if err := models.DB.First(&admin, c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var payload UpdateAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Input tidak valid: " + err.Error()})
		return
	}

	if payload.Nama != nil {
		admin.Nama = *payload.Nama
	}
	if payload.IsActive != nil {
		admin.IsActive = *payload.IsActive
	}
	if payload.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*payload.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memproses password"})
			return
		}
		admin.PasswordHash = string(hash)
	}

	if err := models.DB.Save(&admin).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan perubahan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin berhasil diubah", "admin": admin})
}
