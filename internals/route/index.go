// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	congregationRoute "missionmeals_backend/internals/features/congregations/congregations/route"
	missionaryRoute "missionmeals_backend/internals/features/congregations/missionaries/route"
	hierarchyRoute "missionmeals_backend/internals/features/hierarchy/route"
	mealRoute "missionmeals_backend/internals/features/meals/meals/route"
	"missionmeals_backend/internals/features/notifications"
	notifRoute "missionmeals_backend/internals/features/notifications/route"
	userRoute "missionmeals_backend/internals/features/users/users/route"
	authMiddleware "missionmeals_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under three surfaces:
//
//	/api        — host-facing booking endpoints, keyed by ward ID from the page URL
//	/api/public — access-code entry points (no session)
//	/api/admin  — JWT-authenticated leader endpoints
func SetupRoutes(app *fiber.App, db *gorm.DB, dispatcher *notifications.Dispatcher) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up PUBLIC group...")
	public := api.Group("/public")
	congregationRoute.CongregationPublicRoutes(public, db)
	missionaryRoute.MissionaryPublicRoutes(public, db, dispatcher)

	log.Println("[INFO] Setting up MEAL routes...")
	mealRoute.MealRoutes(api, db, dispatcher)

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := api.Group("/admin", authMiddleware.AuthMiddleware(db))
	hierarchyRoute.HierarchyAdminRoutes(admin, db)
	congregationRoute.CongregationAdminRoutes(admin, db)
	missionaryRoute.MissionaryAdminRoutes(admin, db, dispatcher)
	notifRoute.MessageLogAdminRoutes(admin, db, dispatcher)
	userRoute.UserAdminRoutes(admin, db)

	BaseRoutes(app, db)
}
