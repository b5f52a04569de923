package controllers

import (
	"errors"
	"strconv"

	"academix/backend/config"
	"academix/backend/models"
	"academix/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg}
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role"`
	UID      string `json:"uid" validate:"required"`
	Password string `json:"password"`
}

// CreateUser is the upsert-on-sign-in path. Repeated sign-ins for the
// same email return the existing record untouched, so an established
// role can never be overwritten by a fresh sign-in.
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Email and UID are required")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Email and UID are required")
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleStudent
	}
	if !role.Valid() {
		return utils.BadRequest(c, "Invalid role")
	}

	var existing models.User
	err := uc.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{
			"message":    "User already exists",
			"insertedId": existing.ID,
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Failed to save user", err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     role,
		UID:      req.UID,
	}

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Failed to save user", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Failed to save user", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": user.ID})
}

// TouchSignIn updates only the sign-in timestamp. Matching zero rows is
// a valid outcome, not an error.
func (uc *UserController) TouchSignIn(c *fiber.Ctx) error {
	var req struct {
		Email          string `json:"email"`
		LastSignInTime string `json:"lastSignInTime"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Email is required")
	}

	result := uc.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Update("last_sign_in_time", req.LastSignInTime)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to update user", result.Error)
	}

	return c.JSON(fiber.Map{"modifiedCount": result.RowsAffected})
}

func (uc *UserController) ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := uc.DB.Find(&users).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch users", err)
	}
	return c.JSON(users)
}

func (uc *UserController) CountUsers(c *fiber.Ctx) error {
	var count int64
	if err := uc.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch user count", err)
	}
	return c.JSON(fiber.Map{"total": count})
}

func (uc *UserController) GetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := uc.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found!")
		}
		return utils.InternalServerError(c, "Failed to fetch user data", err)
	}

	return c.JSON(user)
}

func (uc *UserController) GetUserByUID(c *fiber.Ctx) error {
	uid := c.Params("uid")

	var user models.User
	if err := uc.DB.Where("uid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found!")
		}
		return utils.InternalServerError(c, "Failed to fetch user details", err)
	}

	return c.JSON(user)
}

func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	result := uc.DB.Unscoped().Delete(&models.User{}, id)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to delete user", result.Error)
	}

	return c.JSON(fiber.Map{"deletedCount": result.RowsAffected})
}

// MakeAdmin promotes a user by id. A target that does not exist and a
// target already holding the role are indistinguishable in the response.
func (uc *UserController) MakeAdmin(c *fiber.Ctx) error {
	return uc.setRoleByID(c, models.RoleAdmin, "User not found or already an admin")
}

func (uc *UserController) MakeTeacher(c *fiber.Ctx) error {
	return uc.setRoleByID(c, models.RoleTeacher, "User not found or already a teacher")
}

func (uc *UserController) setRoleByID(c *fiber.Ctx, role models.Role, notFoundMsg string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	result := uc.DB.Model(&models.User{}).
		Where("id = ? AND role <> ?", id, role).
		Update("role", role)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to update user role", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, notFoundMsg)
	}

	return c.JSON(fiber.Map{"message": "User role updated to " + string(role) + " successfully"})
}

// SetRoleByEmail is the generic role setter. When no user matches the
// email but a teacher application does, a teacher user is synthesized
// from the application's fields; this supports the approval workflow
// being triggered out of order.
func (uc *UserController) SetRoleByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Role is required")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Role is required")
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return utils.BadRequest(c, "Invalid role")
	}

	result := uc.DB.Model(&models.User{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to update user role", result.Error)
	}

	if result.RowsAffected == 0 {
		var app models.TeacherApplication
		if err := uc.DB.Where("email = ?", email).First(&app).Error; err == nil {
			user := models.User{
				Name:     app.Name,
				Email:    app.Email,
				Role:     models.RoleTeacher,
				PhotoURL: app.Image,
			}
			if err := uc.DB.Create(&user).Error; err != nil {
				return utils.InternalServerError(c, "Failed to update user role", err)
			}
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

// IsStudent answers the self-service role flag; an unknown user simply
// reads as false.
func (uc *UserController) IsStudent(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	err := uc.DB.Where("email = ?", email).First(&user).Error

	return c.JSON(fiber.Map{"student": err == nil && user.Role == models.RoleStudent})
}

func (uc *UserController) IsAdmin(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	err := uc.DB.Where("email = ?", email).First(&user).Error

	return c.JSON(fiber.Map{"admin": err == nil && user.Role == models.RoleAdmin})
}

func (uc *UserController) TeacherStatus(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := uc.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found!")
		}
		return utils.InternalServerError(c, "Failed to fetch teacher status", err)
	}

	return c.JSON(fiber.Map{"isTeacher": user.Role == models.RoleTeacher})
}
