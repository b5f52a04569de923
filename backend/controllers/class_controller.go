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

type ClassController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewClassController(db *gorm.DB, cfg *config.Config) *ClassController {
	return &ClassController{DB: db, Cfg: cfg}
}

type classRequest struct {
	Email       string  `json:"email" validate:"required"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Missing required fields")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Missing required fields")
	}

	class := models.Class{
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Status:      models.StatusPending,
	}

	if err := cc.DB.Create(&class).Error; err != nil {
		return utils.InternalServerError(c, "Failed to add class", err)
	}

	return c.Status(fiber.StatusCreated).JSON(class)
}

func (cc *ClassController) UpdateClass(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	var req struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Image       string  `json:"image"`
		Price       float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Price != 0 {
		updates["price"] = req.Price
	}

	result := cc.DB.Model(&models.Class{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to update class", result.Error)
	}

	return c.JSON(fiber.Map{"modifiedCount": result.RowsAffected})
}

// ListClasses optionally filters by the owning teacher's email.
func (cc *ClassController) ListClasses(c *fiber.Ctx) error {
	query := cc.DB.Model(&models.Class{})
	if email := c.Query("email"); email != "" {
		query = query.Where("email = ?", email)
	}

	var classes []models.Class
	if err := query.Find(&classes).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch classes", err)
	}

	return c.JSON(classes)
}

func (cc *ClassController) GetClass(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	var class models.Class
	if err := cc.DB.First(&class, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Class not found")
		}
		return utils.InternalServerError(c, "Failed to fetch class details", err)
	}

	return c.JSON(class)
}

func (cc *ClassController) DeleteClass(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	result := cc.DB.Unscoped().Delete(&models.Class{}, id)
	if result.Error != nil {
		return utils.InternalServerError(c, "Failed to delete class", result.Error)
	}

	return c.JSON(fiber.Map{"deletedCount": result.RowsAffected})
}

func (cc *ClassController) ApproveClass(c *fiber.Ctx) error {
	return cc.setStatus(c, models.StatusApproved, "Failed to approve class")
}

func (cc *ClassController) RejectClass(c *fiber.Ctx) error {
	return cc.setStatus(c, models.StatusRejected, "Failed to reject class")
}

func (cc *ClassController) setStatus(c *fiber.Ctx, status models.Status, failMsg string) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid class ID")
	}

	result := cc.DB.Model(&models.Class{}).
		Where("id = ? AND status <> ?", id, status).
		Update("status", status)
	if result.Error != nil {
		return utils.InternalServerError(c, failMsg, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.NotFound(c, "Class not found")
	}

	return c.JSON(fiber.Map{"modifiedCount": result.RowsAffected})
}
