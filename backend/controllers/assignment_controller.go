package controllers

import (
	"strconv"

	"academix/backend/config"
	"academix/backend/models"
	"academix/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AssignmentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAssignmentController(db *gorm.DB, cfg *config.Config) *AssignmentController {
	return &AssignmentController{DB: db, Cfg: cfg}
}

type assignmentRequest struct {
	ClassID     uint   `json:"classId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// CreateAssignment creates the assignment and bumps the owning class's
// assignment counter in one transaction.
func (ac *AssignmentController) CreateAssignment(c *fiber.Ctx) error {
	var req assignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Missing required fields")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Missing required fields")
	}

	assignment := models.Assignment{
		ClassID:     req.ClassID,
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}

	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Class{}).
			Where("id = ?", req.ClassID).
			Update("assignment_count", gorm.Expr("assignment_count + 1")).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Failed to add assignment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (ac *AssignmentController) ListByClass(c *fiber.Ctx) error {
	classID, err := strconv.Atoi(c.Params("classId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	var assignments []models.Assignment
	if err := ac.DB.Where("class_id = ?", classID).Find(&assignments).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch assignments", err)
	}

	return c.JSON(assignments)
}

// Submit records a submission by incrementing the class counter. The
// assignment id is carried in the path but the counter lives on the
// class, matching the reference surface.
func (ac *AssignmentController) Submit(c *fiber.Ctx) error {
	var req struct {
		UserID  uint `json:"userId"`
		ClassID uint `json:"classId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result := ac.DB.Model(&models.Class{}).
		Where("id = ?", req.ClassID).
		Update("submission_count", gorm.Expr("submission_count + 1"))
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to submit assignment", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.InternalServerError(c, "Failed to submit assignment",
			gorm.ErrRecordNotFound)
	}

	return c.JSON(fiber.Map{"message": "Assignment submitted successfully!"})
}
