/**
* Name: 			auth_handler.go
* Description: 		Gin HTTP handlers for account creation and login
* Workflow: 		signup, login, federated login, email availability check
 */
package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"MedChat_PatientAssistant/internal/auth"
	"MedChat_PatientAssistant/internal/models"
	"MedChat_PatientAssistant/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// /signup request body
type SignupRequest struct {
	Email           string     `json:"email" example:"ana@example.com"`
	Password        string     `json:"password" example:"Aa1!aaaa"`
	Fullname        string     `json:"fullname" example:"Ana Torres"`
	Age             int        `json:"age" example:"30"`
	Gender          string     `json:"gender" example:"female"`
	Allergies       []string   `json:"allergies"`
	Medications     []string   `json:"medications"`
	MedicalHistory  string     `json:"medical_history"`
	SurgicalHistory []string   `json:"surgical_history"`
	FamilyHistory   string     `json:"family_history"`
	LastCheckup     *time.Time `json:"last_checkup"`
}

// /login request body
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"Aa1!aaaa"`
}

// /login/federated request body. The assertion itself is verified by the
// external identity provider before it reaches this service.
type FederatedLoginRequest struct {
	Provider string `json:"provider" example:"google"`
	Email    string `json:"email" example:"ana@example.com"`
	Fullname string `json:"fullname" example:"Ana Torres"`
}

// Signup godoc
// @Summary      Create account
// @Description  Registers a new patient account with its medical profile.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.SignupRequest true "Signup payload"
// @Success      201 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := models.ValidateSignup(req.Email, req.Password, req.Fullname, req.Age, req.Gender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := models.User{
		Email:           req.Email,
		PasswordHash:    string(hashedPassword),
		Fullname:        strings.TrimSpace(req.Fullname),
		Age:             req.Age,
		Gender:          req.Gender,
		Allergies:       req.Allergies,
		Medications:     req.Medications,
		MedicalHistory:  req.MedicalHistory,
		SurgicalHistory: req.SurgicalHistory,
		FamilyHistory:   req.FamilyHistory,
	}
	if req.LastCheckup != nil {
		user.LastCheckup = *req.LastCheckup
	}

	if err := h.store.CreateUser(&user); err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		} else {
			log.Printf("[ERROR] Failed to create user (database error): %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user (database error)"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates a credential pair and issues a JWT session token.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "Login payload"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse "Malformed request"
// @Failure      401 {object} handler.ErrorResponse "Authentication failure"
// @Failure      500 {object} handler.ErrorResponse "Server error"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// The response never distinguishes an unknown email from a wrong
	// password; only the server log does.
	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Printf("Login failed: no account for email %s", req.Email)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("[ERROR] GetUserByEmail failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login failed: password mismatch for email %s", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := auth.GenerateToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// FederatedLogin godoc
// @Summary      Federated log in
// @Description  Exchanges an externally verified identity assertion for a session token, provisioning a profile on first login.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.FederatedLoginRequest true "Verified identity assertion"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /login/federated [post]
func (h *Handler) FederatedLogin(c *gin.Context) {
	var req FederatedLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(req.Provider) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider is required"})
		return
	}
	if err := models.ValidateEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.FindOrCreateFederated(req.Email, req.Fullname)
	if err != nil {
		log.Printf("[ERROR] FindOrCreateFederated failed for provider %s: %v", req.Provider, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	tokenString, err := auth.GenerateToken(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// CheckEmail godoc
// @Summary      Check email availability
// @Description  Reports whether an account already uses the given email.
// @Tags         User
// @Produce      json
// @Param        email query string true "Email address"
// @Success      200 {object} handler.CheckEmailResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /check-email [get]
func (h *Handler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email not provided"})
		return
	}

	exists, err := h.store.EmailExists(email)
	if err != nil {
		log.Printf("[ERROR] EmailExists failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}
