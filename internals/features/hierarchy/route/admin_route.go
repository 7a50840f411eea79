package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"missionmeals_backend/internals/constants"
	hController "missionmeals_backend/internals/features/hierarchy/controller"
	authMw "missionmeals_backend/internals/middlewares/auth"
)

// HierarchyAdminRoutes mounts Region/Mission/Stake CRUD under the admin group.
func HierarchyAdminRoutes(admin fiber.Router, db *gorm.DB) {
	regionCtrl := hController.NewRegionController(db)
	missionCtrl := hController.NewMissionController(db)
	stakeCtrl := hController.NewStakeController(db)

	regions := admin.Group("/regions", authMw.RequireMinRole(constants.RoleRegion))
	regions.Get("/", regionCtrl.List)
	regions.Post("/", regionCtrl.Create)
	regions.Get("/:id", regionCtrl.Detail)
	regions.Patch("/:id", regionCtrl.Update)
	regions.Delete("/:id", regionCtrl.Delete)

	missions := admin.Group("/missions", authMw.RequireMinRole(constants.RoleMission))
	missions.Get("/", missionCtrl.List)
	missions.Post("/", missionCtrl.Create)
	missions.Get("/:id", missionCtrl.Detail)
	missions.Patch("/:id", missionCtrl.Update)
	missions.Delete("/:id", missionCtrl.Delete)

	stakes := admin.Group("/stakes", authMw.RequireMinRole(constants.RoleStake))
	stakes.Get("/", stakeCtrl.List)
	stakes.Post("/", stakeCtrl.Create)
	stakes.Get("/:id", stakeCtrl.Detail)
	stakes.Patch("/:id", stakeCtrl.Update)
	stakes.Delete("/:id", stakeCtrl.Delete)
}
