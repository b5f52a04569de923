package controllers

import (
	"academix/backend/config"
	"academix/backend/models"
	"academix/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FeedbackController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewFeedbackController(db *gorm.DB, cfg *config.Config) *FeedbackController {
	return &FeedbackController{DB: db, Cfg: cfg}
}

type feedbackRequest struct {
	UserID    uint    `json:"userId"`
	UserName  string  `json:"userName"`
	UserPhoto string  `json:"userPhoto"`
	ClassID   uint    `json:"classId" validate:"required"`
	Rating    float64 `json:"rating"`
	Review    string  `json:"review"`
}

// CreateFeedback fills in the reviewer's name and photo from the user
// record when the caller omits them, falling back to Anonymous.
func (fc *FeedbackController) CreateFeedback(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := utils.Validate.Struct(req); err != nil {
		return utils.BadRequest(c, "Missing required fields")
	}

	var user models.User
	_ = fc.DB.First(&user, req.UserID).Error

	name := req.UserName
	if name == "" {
		name = user.Name
	}
	if name == "" {
		name = "Anonymous"
	}

	photo := req.UserPhoto
	if photo == "" {
		photo = user.PhotoURL
	}

	feedback := models.Feedback{
		UserID:    req.UserID,
		UserName:  name,
		UserPhoto: photo,
		ClassID:   req.ClassID,
		Rating:    req.Rating,
		Review:    req.Review,
	}

	if err := fc.DB.Create(&feedback).Error; err != nil {
		return utils.InternalServerError(c, "Failed to submit feedback", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback submitted successfully!"})
}

func (fc *FeedbackController) ListFeedback(c *fiber.Ctx) error {
	var feedback []models.Feedback
	if err := fc.DB.Find(&feedback).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch feedback", err)
	}
	return c.JSON(feedback)
}
