package controllers

import (
	"errors"
	"strconv"
	"time"

	"academix/backend/config"
	"academix/backend/models"
	"academix/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EnrollmentController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewEnrollmentController(db *gorm.DB, cfg *config.Config) *EnrollmentController {
	return &EnrollmentController{DB: db, Cfg: cfg}
}

type enrollRequest struct {
	UserID     uint    `json:"userId"`
	UserName   string  `json:"userName"`
	UserEmail  string  `json:"userEmail" validate:"required"`
	ClassName  string  `json:"className"`
	ClassPrice float64 `json:"classPrice"`
}

// Enroll creates the enrollment and bumps the class counter in one
// transaction, so the record and the aggregate cannot drift apart.
func (ec *EnrollmentController) Enroll(c *fiber.Ctx) error {
	classID, err := strconv.Atoi(c.Params("classId"))
	if err != nil {
		return utils.BadRequest(c, "Class ID and User Email are required")
	}

	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Class ID and User Email are required")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Class ID and User Email are required")
	}

	var existing models.Enrollment
	err = ec.DB.Where("class_id = ? AND user_email = ?", classID, req.UserEmail).
		First(&existing).Error
	if err == nil {
		return utils.BadRequest(c, "Already enrolled in this class")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Failed to enroll in class", err)
	}

	enrollment := models.Enrollment{
		ClassID:    uint(classID),
		UserID:     req.UserID,
		UserEmail:  req.UserEmail,
		UserName:   req.UserName,
		ClassName:  req.ClassName,
		ClassPrice: req.ClassPrice,
		EnrolledAt: time.Now(),
	}

	err = ec.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		return tx.Model(&models.Class{}).
			Where("id = ?", classID).
			Update("enrollment_count", gorm.Expr("enrollment_count + 1")).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Failed to enroll in class", err)
	}

	return c.JSON(fiber.Map{"message": "Enrollment successful!"})
}

type enrolledClass struct {
	models.Enrollment
	ClassDetails *models.Class `json:"classDetails"`
}

// ListByUser joins each enrollment to its class. A dangling class
// reference yields a null classDetails field instead of failing the
// whole request.
func (ec *EnrollmentController) ListByUser(c *fiber.Ctx) error {
	email := c.Params("email")

	var enrollments []models.Enrollment
	if err := ec.DB.Where("user_email = ?", email).Find(&enrollments).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch enrolled classes", err)
	}

	enriched := make([]enrolledClass, 0, len(enrollments))
	for _, enrollment := range enrollments {
		entry := enrolledClass{Enrollment: enrollment}

		var class models.Class
		if err := ec.DB.First(&class, enrollment.ClassID).Error; err == nil {
			entry.ClassDetails = &class
		}

		enriched = append(enriched, entry)
	}

	return c.JSON(enriched)
}

func (ec *EnrollmentController) CountEnrollments(c *fiber.Ctx) error {
	var count int64
	if err := ec.DB.Model(&models.Enrollment{}).Count(&count).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch enrollments count", err)
	}
	return c.JSON(fiber.Map{"total": count})
}
