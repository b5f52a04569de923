package controllers

import (
	"errors"

	"academix/backend/config"
	"academix/backend/models"
	"academix/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Cfg: cfg}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// IssueToken godoc
// @Summary Issue a short-lived identity token
// @Description Signs a bearer token for the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body tokenRequest true "Token subject"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /jwt [post]
func (ac *AuthController) IssueToken(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Email is required")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Email is required")
	}

	token, err := utils.IssueToken(req.Email, ac.Cfg.TokenTTL, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Failed to generate token", err)
	}

	return c.JSON(fiber.Map{"token": token})
}

// Login godoc
// @Summary Password login
// @Description Checks credentials and issues a one-hour token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Email and password are required")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Email and password are required")
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Failed to fetch user data", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return utils.Unauthorized(c, "Incorrect password")
	}

	token, err := utils.IssueToken(user.Email, ac.Cfg.LoginTokenTTL, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Failed to generate token", err)
	}

	return c.JSON(fiber.Map{"token": token})
}
