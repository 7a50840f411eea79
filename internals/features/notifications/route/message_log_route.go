package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"missionmeals_backend/internals/features/notifications"
	notifController "missionmeals_backend/internals/features/notifications/controller"
	authMiddleware "missionmeals_backend/internals/middlewares/auth"
)

// MessageLogAdminRoutes mounts the delivery audit trail and the manual
// message path under the authenticated admin group.
func MessageLogAdminRoutes(admin fiber.Router, db *gorm.DB, dispatcher *notifications.Dispatcher) {
	ctrl := notifController.NewMessageLogController(db, dispatcher)

	admin.Get("/congregations/:id/message-logs",
		authMiddleware.RequireCongregationAccess(db, "id"), ctrl.ListByCongregation)
	admin.Post("/missionaries/:id/message", ctrl.SendCustom)
}
