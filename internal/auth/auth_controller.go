package auth

import (
	"log"
	"net/http"

	"github.com/Claudiov13/JornSports-V2/config"
	"github.com/Claudiov13/JornSports-V2/internal/middleware"
	"github.com/Claudiov13/JornSports-V2/pkg/responses"
	"github.com/Claudiov13/JornSports-V2/pkg/token"
	"github.com/Claudiov13/JornSports-V2/pkg/utils"
	"github.com/Claudiov13/JornSports-V2/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

// Register godoc
// @Summary Register a new coach account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 201 {object} responses.SuccessResponse{data=CoachResponse}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 409 {object} responses.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	existing, err := ac.repo.GetCoachByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to check existing account")
		return
	}
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Email already registered", nil)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to process password")
		return
	}

	coach := Coach{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         DefaultCoachRole,
	}
	if err := ac.repo.CreateCoach(&coach); err != nil {
		log.Printf("register: create coach failed: %v", err)
		responses.InternalServerError(c, "Failed to create account")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Account created", FilterCoachRecord(&coach))
}

// Login godoc
// @Summary Authenticate a coach and issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} responses.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	coach, err := ac.repo.GetCoachByEmail(req.Email)
	if err != nil {
		responses.InternalServerError(c, "Failed to look up account")
		return
	}
	if coach == nil || !utils.CheckPassword(coach.PasswordHash, req.Password) {
		responses.Unauthorized(c, "Invalid email or password")
		return
	}

	accessToken, err := token.GenerateJWT(coach.ID, coach.Email, coach.Role,
		ac.config.JWT.Secret, ac.config.JWT.AccessExpireHours)
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		responses.InternalServerError(c, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   ac.config.JWT.AccessExpireHours * 3600,
	})
}

// Me godoc
// @Summary Return the authenticated coach's profile
// @Tags Auth
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=CoachResponse}
// @Failure 401 {object} responses.ErrorResponse
// @Router /api/me [get]
// @Security BearerAuth
func (ac *AuthController) Me(c *gin.Context) {
	coachID, err := middleware.GetCoachIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	coach, err := ac.repo.GetCoachByID(coachID)
	if err != nil || coach == nil {
		responses.NotFound(c, "Coach")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", FilterCoachRecord(coach))
}
