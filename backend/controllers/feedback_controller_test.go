package controllers_test

import (
	"testing"

	"academix/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFeedbackFallsBackToUserRecord(t *testing.T) {
	user := models.User{
		Name:     "Reviewer",
		Email:    "reviewer@x.com",
		PhotoURL: "https://example.com/r.png",
		Role:     models.RoleStudent,
		UID:      "reviewer-uid",
	}
	require.NoError(t, db.Create(&user).Error)
	class := createClass(t, "Reviewed", "review-owner@x.com")

	resp := doRequest(t, "POST", "/feedback", map[string]interface{}{
		"userId":  user.ID,
		"classId": class.ID,
		"rating":  4.5,
		"review":  "Solid class",
	}, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var feedback models.Feedback
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&feedback).Error)
	assert.Equal(t, "Reviewer", feedback.UserName)
	assert.Equal(t, "https://example.com/r.png", feedback.UserPhoto)
}

func TestCreateFeedbackAnonymousFallback(t *testing.T) {
	class := createClass(t, "Anon Reviewed", "anon-owner@x.com")

	resp := doRequest(t, "POST", "/feedback", map[string]interface{}{
		"userId":  999999,
		"classId": class.ID,
		"rating":  3.0,
	}, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var feedback models.Feedback
	require.NoError(t, db.Where("class_id = ?", class.ID).First(&feedback).Error)
	assert.Equal(t, "Anonymous", feedback.UserName)
	assert.Empty(t, feedback.UserPhoto)
}

func TestListFeedback(t *testing.T) {
	resp := doRequest(t, "GET", "/feedback", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
