package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	missionaryController "missionmeals_backend/internals/features/congregations/missionaries/controller"
	"missionmeals_backend/internals/features/notifications"
	"missionmeals_backend/internals/middlewares"
)

// MissionaryAdminRoutes mounts roster management under the authenticated admin group.
func MissionaryAdminRoutes(admin fiber.Router, db *gorm.DB, dispatcher *notifications.Dispatcher) {
	ctrl := missionaryController.NewMissionaryController(db, dispatcher)

	ms := admin.Group("/missionaries")
	ms.Post("/", ctrl.Create)
	ms.Get("/", ctrl.List)
	ms.Get("/:id", ctrl.Detail)
	ms.Patch("/:id", ctrl.Update)
	ms.Delete("/:id", ctrl.Delete)
}

// MissionaryPublicRoutes exposes self-registration, email verification and
// consent updates. Registration is rate limited; the rest are guarded by the
// verification or access code carried in the payload.
func MissionaryPublicRoutes(public fiber.Router, db *gorm.DB, dispatcher *notifications.Dispatcher) {
	ctrl := missionaryController.NewMissionaryController(db, dispatcher)

	public.Post("/missionaries/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	public.Post("/missionaries/verify", ctrl.Verify)
	public.Post("/missionaries/consent", ctrl.UpdateConsent)
}
