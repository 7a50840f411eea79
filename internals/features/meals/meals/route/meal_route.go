package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mealController "missionmeals_backend/internals/features/meals/meals/controller"
	notifications "missionmeals_backend/internals/features/notifications"
	middlewares "missionmeals_backend/internals/middlewares"
)

// MealRoutes mounts the host-facing booking endpoints. Hosts are not
// authenticated; ward scoping comes from wardId / access-code URLs.
func MealRoutes(api fiber.Router, db *gorm.DB, dispatcher *notifications.Dispatcher) {
	ctrl := mealController.NewMealController(db, dispatcher)

	meals := api.Group("/meals")
	meals.Get("/", ctrl.List)
	meals.Post("/", middlewares.BookingRateLimiter(), ctrl.Create)
	meals.Post("/check-availability", ctrl.CheckAvailability)
	meals.Patch("/:id", ctrl.Update)
	meals.Post("/:id/cancel", ctrl.Cancel)
}
