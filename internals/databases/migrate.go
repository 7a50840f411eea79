package database

import (
	"log"

	"gorm.io/gorm"

	congregationModel "missionmeals_backend/internals/features/congregations/congregations/model"
	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	hierarchyModel "missionmeals_backend/internals/features/hierarchy/model"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
	notificationModel "missionmeals_backend/internals/features/notifications/model"
	userModel "missionmeals_backend/internals/features/users/users/model"
)

// Migrate creates/updates the schema. The partial unique index on meals is
// the authoritative guard against double-booking: two concurrent requests may
// both pass the availability pre-check, but only one insert can win.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&hierarchyModel.RegionModel{},
		&hierarchyModel.MissionModel{},
		&hierarchyModel.StakeModel{},
		&congregationModel.CongregationModel{},
		&missionaryModel.MissionaryModel{},
		&mealModel.MealModel{},
		&userModel.UserModel{},
		&userModel.UserCongregationModel{},
		&notificationModel.MessageLogModel{},
	); err != nil {
		return err
	}

	// Partial unique index: at most one non-cancelled meal per (missionary, date).
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_meals_missionary_date_active
		 ON meals (meal_missionary_id, meal_date)
		 WHERE meal_cancelled = FALSE`,
	).Error; err != nil {
		return err
	}

	log.Println("✅ Schema migrated.")
	return nil
}
