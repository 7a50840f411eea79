package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	congregationModel "missionmeals_backend/internals/features/congregations/congregations/model"
	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
)

// Selector picks either one concrete companionship or a missionary type
// ("the Elders as a unit"). Exactly one side is set.
type Selector struct {
	MissionaryID   *uuid.UUID
	MissionaryType missionaryModel.MissionaryType
}

// IsAvailable answers "can this missionary (or missionary type) be booked in
// this congregation on this date". Read-only; safe to call concurrently.
//
// Type-level availability is "any, not all": the type is available while at
// least one active companionship of that type is free that day. A ward with
// no active missionaries of the requested type is unavailable (fails closed).
func IsAvailable(db *gorm.DB, congregationID uuid.UUID, date string, sel Selector) (bool, error) {
	var congregation congregationModel.CongregationModel
	if err := db.First(&congregation, "congregation_id = ?", congregationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, fiber.NewError(fiber.StatusNotFound, "Congregation not found")
		}
		return false, err
	}
	if !congregation.CongregationIsActive {
		return false, nil
	}

	if sel.MissionaryID != nil {
		return missionaryFree(db, congregationID, *sel.MissionaryID, date)
	}

	var ids []uuid.UUID
	if err := db.Model(&missionaryModel.MissionaryModel{}).
		Where("missionary_congregation_id = ? AND missionary_type = ? AND missionary_is_active = ?",
			congregationID, sel.MissionaryType, true).
		Pluck("missionary_id", &ids).Error; err != nil {
		return false, err
	}
	if len(ids) == 0 {
		return false, nil
	}

	var booked int64
	if err := db.Model(&mealModel.MealModel{}).
		Where("meal_missionary_id IN ? AND meal_date = ? AND meal_cancelled = ?", ids, date, false).
		Distinct("meal_missionary_id").
		Count(&booked).Error; err != nil {
		return false, err
	}

	return booked < int64(len(ids)), nil
}

// missionaryFree checks one concrete companionship: it must exist, be active
// and belong to the congregation, and have no non-cancelled meal that day.
func missionaryFree(db *gorm.DB, congregationID, missionaryID uuid.UUID, date string) (bool, error) {
	var cnt int64
	if err := db.Model(&missionaryModel.MissionaryModel{}).
		Where("missionary_id = ? AND missionary_congregation_id = ? AND missionary_is_active = ?",
			missionaryID, congregationID, true).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	if cnt == 0 {
		return false, nil
	}

	var meals int64
	if err := db.Model(&mealModel.MealModel{}).
		Where("meal_missionary_id = ? AND meal_date = ? AND meal_cancelled = ?", missionaryID, date, false).
		Count(&meals).Error; err != nil {
		return false, err
	}
	return meals == 0, nil
}
