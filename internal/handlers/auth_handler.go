package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bookmycare/clinic-scheduler/internal/config"
	"github.com/bookmycare/clinic-scheduler/internal/httperr"
	"github.com/bookmycare/clinic-scheduler/internal/httpresp"
	"github.com/bookmycare/clinic-scheduler/internal/models"
	ucAccount "github.com/bookmycare/clinic-scheduler/internal/usecase/account"
)

type AuthHandler struct {
	config     *config.Config
	registerUC *ucAccount.Register
	authUC     *ucAccount.Authenticate
}

func NewAuthHandler(
	cfg *config.Config,
	registerUC *ucAccount.Register,
	authUC *ucAccount.Authenticate,
) *AuthHandler {
	return &AuthHandler{
		config:     cfg,
		registerUC: registerUC,
		authUC:     authUC,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`

	// role=patient
	Age    int    `json:"age"`
	Gender string `json:"gender"`

	// role=doctor
	Specialization string `json:"specialization"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Phone:          req.Phone,
		Age:            req.Age,
		Gender:         req.Gender,
		Specialization: req.Specialization,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_role"):
			httperr.BadRequest(c, "invalid_role", "Role must be admin, doctor or patient.")
		case httperr.IsBusiness(err, "invalid_email"):
			httperr.BadRequest(c, "invalid_email", "The email address does not look valid.")
		case httperr.IsBusiness(err, "email_already_exists"):
			httperr.BadRequest(c, "email_already_exists", "An account with this email already exists.")
		default:
			httperr.Internal(c, "failed_to_register", "Could not create the account.")
		}
		return
	}

	httpresp.Success(c, gin.H{"userId": user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	user, err := h.authUC.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_credentials") {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "failed_to_login", "Could not sign in.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not sign the session token.")
		return
	}

	httpresp.Success(c, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
