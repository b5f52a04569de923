package controllers_test

import (
	"fmt"
	"testing"

	"academix/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequiresEmailAndUID(t *testing.T) {
	resp := doRequest(t, "POST", "/users", map[string]string{"name": "No Email"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "Email and UID are required", result["message"])
}

func TestUpsertOnSignInNeverChangesRole(t *testing.T) {
	email := "sticky-role@example.com"

	resp := doRequest(t, "POST", "/users", map[string]string{
		"email": email,
		"uid":   "sticky-uid",
	}, "")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	assert.Equal(t, models.RoleStudent, user.Role)

	// Promote, then sign in again asking for a different role. The
	// second call must report the existing record and leave the role.
	require.NoError(t, db.Model(&user).Update("role", models.RoleTeacher).Error)

	resp = doRequest(t, "POST", "/users", map[string]string{
		"email": email,
		"uid":   "sticky-uid",
		"role":  "student",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "User already exists", result["message"])

	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	assert.Equal(t, models.RoleTeacher, user.Role)

	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	resp := doRequest(t, "POST", "/users", map[string]string{
		"email": "badrole@example.com",
		"uid":   "badrole-uid",
		"role":  "superuser",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTouchSignIn(t *testing.T) {
	email := "touch@example.com"
	doRequest(t, "POST", "/users", map[string]string{"email": email, "uid": "touch-uid"}, "")

	resp := doRequest(t, "PATCH", "/users", map[string]string{
		"email":          email,
		"lastSignInTime": "2026-08-31T10:00:00Z",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, float64(1), result["modifiedCount"])

	// Unknown email is a no-op, not an error.
	resp = doRequest(t, "PATCH", "/users", map[string]string{
		"email":          "ghost@example.com",
		"lastSignInTime": "2026-08-31T10:00:00Z",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result = decodeBody(t, resp)
	assert.Equal(t, float64(0), result["modifiedCount"])
}

func TestMakeAdmin(t *testing.T) {
	doRequest(t, "POST", "/users", map[string]string{
		"email": "promote-me@example.com",
		"uid":   "promote-uid",
	}, "")

	var user models.User
	require.NoError(t, db.Where("email = ?", "promote-me@example.com").First(&user).Error)

	adminToken := tokenFor(t, "admin@academix.io")
	path := fmt.Sprintf("/users/admin/%d", user.ID)

	resp := doRequest(t, "PATCH", path, nil, adminToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&user, user.ID).Error)
	assert.Equal(t, models.RoleAdmin, user.Role)

	// Already an admin reads the same as not found.
	resp = doRequest(t, "PATCH", path, nil, adminToken)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "User not found or already an admin", result["message"])
}

func TestMakeAdminInvalidID(t *testing.T) {
	resp := doRequest(t, "PATCH", "/users/admin/not-a-number", nil,
		tokenFor(t, "admin@academix.io"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSetRoleByEmailFallsBackToApplication(t *testing.T) {
	// No user exists for this email, only a teacher application.
	application := models.TeacherApplication{
		Name:       "Applied Only",
		Email:      "applied-only@example.com",
		Image:      "https://example.com/a.png",
		Experience: "3y",
		Title:      "Tutor",
		Category:   "Physics",
		Status:     models.StatusPending,
	}
	require.NoError(t, db.Create(&application).Error)

	resp := doRequest(t, "PATCH", "/users/role/applied-only@example.com",
		map[string]string{"role": "teacher"}, tokenFor(t, "admin@academix.io"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, db.Where("email = ?", "applied-only@example.com").First(&user).Error)
	assert.Equal(t, models.RoleTeacher, user.Role)
	assert.Equal(t, "Applied Only", user.Name)
	assert.Equal(t, "https://example.com/a.png", user.PhotoURL)
}

func TestDeleteUser(t *testing.T) {
	doRequest(t, "POST", "/users", map[string]string{
		"email": "delete-me@example.com",
		"uid":   "delete-uid",
	}, "")

	var user models.User
	require.NoError(t, db.Where("email = ?", "delete-me@example.com").First(&user).Error)

	resp := doRequest(t, "DELETE", fmt.Sprintf("/users/%d", user.ID), nil,
		tokenFor(t, "admin@academix.io"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	err := db.Where("email = ?", "delete-me@example.com").First(&user).Error
	assert.Error(t, err)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	resp := doRequest(t, "GET", "/users/email/nosuch@example.com", nil,
		tokenFor(t, "admin@academix.io"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "User not found!", result["message"])
}

func TestCountUsers(t *testing.T) {
	resp := doRequest(t, "GET", "/users/count", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.GreaterOrEqual(t, result["total"].(float64), float64(1))
}
