package middleware

import (
	"net/http"
	"strings"

	"PRESENSI/config"
	"PRESENSI/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// RequireAuth memvalidasi Bearer token dan menaruh karyawan yang login ke
// context sebagai "currentUser".
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			return
		}

		// Token admin tidak berlaku di endpoint karyawan; tanpa cek ini,
		// UserId admin yang kebetulan sama dengan id karyawan akan
		// ter-resolve jadi karyawan tersebut.
		if claims.Role != models.RoleKaryawan {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Akses khusus karyawan"})
			return
		}

		// Ambil data karyawan dari DB supaya status aktifnya selalu fresh
		var karyawan models.Karyawan
		if err := models.DB.First(&karyawan, claims.UserId).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesi pengguna tidak valid"})
			return
		}

		if !karyawan.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":  "ACCOUNT_INACTIVE",
				"error": "Akun Anda sudah tidak aktif. Hubungi admin.",
			})
			return
		}

		c.Set("currentUser", karyawan)
		c.Next()
	}
}

// RequireAdmin untuk endpoint manajemen: token harus milik admin user.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			return
		}

		if claims.Role != models.RoleAdmin && claims.Role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Akses khusus admin"})
			return
		}

		var admin models.AdminUser
		if err := models.DB.First(&admin, claims.UserId).Error; err != nil || !admin.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sesi admin tidak valid"})
			return
		}

		c.Set("currentAdmin", admin)
		c.Next()
	}
}

func parseToken(c *gin.Context) (*config.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token tidak ditemukan"})
		return nil, false
	}
	raw := strings.TrimPrefix(authHeader, "Bearer ")

	claims := &config.JWTClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWT_KEY, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token tidak valid atau kedaluwarsa"})
		return nil, false
	}

	return claims, true
}
