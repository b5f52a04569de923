package controllers

import (
	"errors"
	"strconv"

	"academix/backend/config"
	"academix/backend/models"
	"academix/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TeacherController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewTeacherController(db *gorm.DB, cfg *config.Config) *TeacherController {
	return &TeacherController{DB: db, Cfg: cfg}
}

type applicationRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Image      string `json:"image"`
	Experience string `json:"experience" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Category   string `json:"category" validate:"required"`
	Status     string `json:"status"`
}

func (tc *TeacherController) SubmitApplication(c *fiber.Ctx) error {
	var req applicationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Missing required fields")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Missing required fields")
	}

	status := models.Status(req.Status)
	if req.Status == "" {
		status = models.StatusPending
	}

	app := models.TeacherApplication{
		Name:       req.Name,
		Email:      req.Email,
		Image:      req.Image,
		Experience: req.Experience,
		Title:      req.Title,
		Category:   req.Category,
		Status:     status,
	}

	if err := tc.DB.Create(&app).Error; err != nil {
		return utils.InternalServerError(c, "Failed to submit teacher data", err)
	}

	return c.JSON(fiber.Map{"acknowledged": true})
}

func (tc *TeacherController) ListByEmail(c *fiber.Ctx) error {
	email := c.Query("email")

	var apps []models.TeacherApplication
	if err := tc.DB.Where("email = ?", email).Find(&apps).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch teachers", err)
	}

	return c.JSON(apps)
}

func (tc *TeacherController) ListPending(c *fiber.Ctx) error {
	var apps []models.TeacherApplication
	if err := tc.DB.Where("status = ?", models.StatusPending).Find(&apps).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch pending teachers", err)
	}

	return c.JSON(apps)
}

func (tc *TeacherController) CountApplications(c *fiber.Ctx) error {
	var count int64
	if err := tc.DB.Model(&models.TeacherApplication{}).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch teacher count", err)
	}
	return c.JSON(fiber.Map{"total": count})
}

// Approve resolves a pending application and, in the same transaction,
// guarantees a teacher user for the applicant: an existing user is
// promoted (approval is authoritative over any prior role), otherwise a
// user is synthesized from the application's fields.
func (tc *TeacherController) Approve(c *fiber.Ctx) error {
	email := c.Params("email")

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TeacherApplication{}).
			Where("email = ? AND status = ?", email, models.StatusPending).
			Update("status", models.StatusApproved)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var user models.User
		err := tx.Where("email = ?", email).First(&user).Error
		if err == nil {
			return tx.Model(&user).Update("role", models.RoleTeacher).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var app models.TeacherApplication
		if err := tx.Where("email = ?", email).First(&app).Error; err != nil {
			return err
		}

		return tx.Create(&models.User{
			Name:     app.Name,
			Email:    app.Email,
			Role:     models.RoleTeacher,
			PhotoURL: app.Image,
		}).Error
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound(c, "Teacher not found or already approved.")
	}
	if err != nil {
		return utils.InternalServerError(c, "Failed to approve teacher", err)
	}

	return c.JSON(fiber.Map{"message": "Teacher approved and role updated successfully."})
}

// Reject moves a pending application to rejected. Resolved and unknown
// applications read the same from the outside: not found.
func (tc *TeacherController) Reject(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid teacher ID")
	}

	result := tc.DB.Model(&models.TeacherApplication{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", models.StatusRejected)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to reject teacher.", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Teacher not found or already rejected.")
	}

	return c.JSON(fiber.Map{"message": "Teacher rejected successfully."})
}
