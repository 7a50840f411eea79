package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"missionmeals_backend/internals/constants"
	congregationController "missionmeals_backend/internals/features/congregations/congregations/controller"
	authMiddleware "missionmeals_backend/internals/middlewares/auth"
)

// CongregationAdminRoutes mounts ward management under the authenticated admin group.
func CongregationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := congregationController.NewCongregationController(db)

	wards := admin.Group("/congregations")
	wards.Post("/", authMiddleware.RequireMinRole(constants.RoleStake), ctrl.Create)
	wards.Get("/", ctrl.List)
	wards.Get("/:id", authMiddleware.RequireCongregationAccess(db, "id"), ctrl.Detail)
	wards.Patch("/:id", authMiddleware.RequireCongregationAccess(db, "id"), ctrl.Update)
	wards.Delete("/:id", authMiddleware.RequireMinRole(constants.RoleStake), ctrl.Delete)
	wards.Post("/:id/access-code", authMiddleware.RequireCongregationAccess(db, "id"), ctrl.RegenerateAccessCode)
	wards.Get("/:id/stats", authMiddleware.RequireCongregationAccess(db, "id"), ctrl.Stats)
}

// CongregationPublicRoutes exposes the access-code lookup hosts use to reach
// a ward's booking page.
func CongregationPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := congregationController.NewCongregationController(db)

	public.Get("/congregations/:accessCode", ctrl.PublicByAccessCode)
}
