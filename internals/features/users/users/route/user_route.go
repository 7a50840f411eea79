package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"missionmeals_backend/internals/constants"
	userController "missionmeals_backend/internals/features/users/users/controller"
	"missionmeals_backend/internals/middlewares"
	authMiddleware "missionmeals_backend/internals/middlewares/auth"
)

// AuthRoutes mounts login/logout under /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	auth := api.Group("/auth")
	ctrl := userController.NewAuthController(db)

	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/logout", ctrl.Logout)
}

// UserAdminRoutes mounts user management under the authenticated admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := admin.Group("/users", authMiddleware.RequireMinRole(constants.RoleStake))
	users.Post("/", ctrl.Create)
	users.Get("/", ctrl.List)
	users.Get("/:id", ctrl.Detail)
	users.Patch("/:id", ctrl.Update)
	users.Delete("/:id", ctrl.Delete)
	users.Post("/:id/congregations", ctrl.LinkCongregation)
	users.Delete("/:id/congregations/:congregationId", ctrl.UnlinkCongregation)
}
