package routes

import (
	"academix/backend/config"
	"academix/backend/controllers"
	"academix/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authController := controllers.NewAuthController(db, cfg)
	userController := controllers.NewUserController(db, cfg)
	teacherController := controllers.NewTeacherController(db, cfg)
	classController := controllers.NewClassController(db, cfg)
	enrollmentController := controllers.NewEnrollmentController(db, cfg)
	assignmentController := controllers.NewAssignmentController(db, cfg)
	feedbackController := controllers.NewFeedbackController(db, cfg)

	// Middleware
	authenticate := middleware.Authenticate(cfg)
	requireAdmin := middleware.RequireAdmin(db)
	requireSelf := middleware.RequireSelf()

	// Liveness
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Academix is up and running")
	})

	// Tokens
	app.Post("/jwt", authController.IssueToken)
	app.Post("/login", authController.Login)

	// Users. Static segments are registered before parameterized ones.
	app.Post("/users", userController.CreateUser)
	app.Patch("/users", userController.TouchSignIn)
	app.Get("/users", authenticate, requireAdmin, userController.ListUsers)
	app.Get("/users/count", userController.CountUsers)
	app.Get("/users/email/:email", authenticate, userController.GetUserByEmail)
	app.Get("/users/uid/:uid", authenticate, userController.GetUserByUID)
	app.Patch("/users/admin/:id", authenticate, requireAdmin, userController.MakeAdmin)
	app.Patch("/users/role/:email", authenticate, userController.SetRoleByEmail)
	app.Delete("/users/:id", authenticate, requireAdmin, userController.DeleteUser)

	// Self-service role flags
	app.Get("/user/student/:email", authenticate, requireSelf, userController.IsStudent)
	app.Get("/user/admin/:email", authenticate, requireSelf, userController.IsAdmin)
	app.Patch("/user/teacher/:id", authenticate, requireAdmin, userController.MakeTeacher)

	// Teacher applications
	app.Post("/teachers", teacherController.SubmitApplication)
	app.Get("/teachers", teacherController.ListByEmail)
	app.Get("/teachers/pending", authenticate, requireAdmin, teacherController.ListPending)
	app.Get("/teachers/count", teacherController.CountApplications)
	app.Patch("/teachers/:id/reject", authenticate, requireAdmin, teacherController.Reject)
	app.Patch("/teachers/:email", teacherController.Approve)
	app.Get("/teacher/status/:email", authenticate, userController.TeacherStatus)

	// Classes
	classes := app.Group("/classes", authenticate)
	classes.Post("/", classController.CreateClass)
	classes.Get("/", classController.ListClasses)
	classes.Get("/:id", classController.GetClass)
	classes.Put("/:id", classController.UpdateClass)
	classes.Delete("/:id", classController.DeleteClass)
	classes.Patch("/:id/approve", requireAdmin, classController.ApproveClass)
	classes.Patch("/:id/reject", requireAdmin, classController.RejectClass)

	// Enrollments
	app.Post("/enroll/:classId", authenticate, enrollmentController.Enroll)
	app.Get("/enrollments/user/:email", authenticate, enrollmentController.ListByUser)
	app.Get("/enrollments/count", enrollmentController.CountEnrollments)

	// Assignments
	app.Post("/assignments", assignmentController.CreateAssignment)
	app.Get("/assignments/:classId", assignmentController.ListByClass)
	app.Post("/assignments/:assignmentId/submit", assignmentController.Submit)

	// Feedback
	app.Get("/feedback", feedbackController.ListFeedback)
	app.Post("/feedback", feedbackController.CreateFeedback)
}
