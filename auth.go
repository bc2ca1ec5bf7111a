package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GenerateToken(staffID uint) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "defaultsecret"
	}

	claims := jwt.MapClaims{
		"staff_id": staffID,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// EnsureStaffUser seeds the staff account from STAFF_EMAIL and
// STAFF_PASSWORD so a fresh deployment can log in. Does nothing when
// the account already exists or the env is unset.
func EnsureStaffUser() {
	email := os.Getenv("STAFF_EMAIL")
	password := os.Getenv("STAFF_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var existing StaffUser
	err := DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("⚠️ staff lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("⚠️ staff password hash failed: %v", err)
		return
	}
	if err := DB.Create(&StaffUser{Email: email, PasswordHash: string(hash)}).Error; err != nil {
		log.Printf("⚠️ staff seed failed: %v", err)
		return
	}
	log.Println("✅ Staff user seeded")
}

// ========================
// STAFF LOGIN HANDLER
// ========================

func StaffLogin(c *gin.Context) {
	var req LoginRequest
	var staff StaffUser

	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := DB.Where("email = ?", req.Email).First(&staff).Error; err != nil {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)) != nil {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := GenerateToken(staff.ID)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
