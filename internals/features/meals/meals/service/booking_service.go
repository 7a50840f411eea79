package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	congregationModel "missionmeals_backend/internals/features/congregations/congregations/model"
	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	mealDTO "missionmeals_backend/internals/features/meals/meals/dto"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
)

// BookingService owns meal creation, update and cancellation. The
// availability pre-check produces friendly messages; the partial unique
// index is what actually guarantees the single-booking invariant under
// concurrent requests.
type BookingService struct {
	DB *gorm.DB

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Now: time.Now}
}

type BookMealCommand struct {
	MissionaryID    uuid.UUID
	CongregationID  uuid.UUID
	Date            string
	StartTime       string
	HostName        string
	HostPhone       string
	HostEmail       *string
	HostAddress     *string
	MealDescription *string
	SpecialNotes    *string
}

/* ===================== CREATE ===================== */

func (s *BookingService) BookMeal(cmd BookMealCommand) (*mealModel.MealModel, error) {
	if _, err := time.Parse(mealModel.DateLayout, cmd.Date); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date")
	}
	today := s.Now().Format(mealModel.DateLayout)
	if cmd.Date < today {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Cannot book a meal in the past")
	}

	congregation, missionary, err := s.loadBookingTargets(cmd.CongregationID, cmd.MissionaryID)
	if err != nil {
		return nil, err
	}

	if err := s.checkBookingCaps(congregation, cmd); err != nil {
		return nil, err
	}

	meal := &mealModel.MealModel{
		MealID:             uuid.New(),
		MealMissionaryID:   cmd.MissionaryID,
		MealCongregationID: cmd.CongregationID,
		MealDate:           cmd.Date,
		MealStartTime:      cmd.StartTime,
		MealHostName:       cmd.HostName,
		MealHostPhone:      cmd.HostPhone,
		MealHostEmail:      cmd.HostEmail,
		MealHostAddress:    cmd.HostAddress,
		MealDescription:    cmd.MealDescription,
		MealSpecialNotes:   cmd.SpecialNotes,
		MealCancelled:      false,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		free, err := missionaryFree(tx, cmd.CongregationID, cmd.MissionaryID, cmd.Date)
		if err != nil {
			return err
		}
		if !free {
			return conflictError(missionary.MissionaryType)
		}
		return tx.Create(meal).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race: another booking landed between check and insert.
			return nil, conflictError(missionary.MissionaryType)
		}
		if fe, ok := err.(*fiber.Error); ok {
			return nil, fe
		}
		return nil, err
	}

	return meal, nil
}

/* ===================== UPDATE ===================== */

func (s *BookingService) UpdateMeal(id uuid.UUID, req mealDTO.UpdateMealRequest) (*mealModel.MealModel, error) {
	meal, err := s.findMeal(id)
	if err != nil {
		return nil, err
	}
	if meal.MealCancelled {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Cannot update a cancelled meal")
	}

	newMissionaryID := meal.MealMissionaryID
	if req.MissionaryID != nil {
		newMissionaryID = *req.MissionaryID
	}
	newDate := meal.MealDate
	if req.Date != nil {
		newDate = *req.Date
	}

	// A date or missionary change moves the booking to a different slot, so
	// the conflict check runs again. Time-of-day changes within the same day
	// do not.
	revalidate := newMissionaryID != meal.MealMissionaryID || newDate != meal.MealDate

	var missionary missionaryModel.MissionaryModel
	if err := s.DB.First(&missionary, "missionary_id = ?", newMissionaryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Missionary not found")
		}
		return nil, err
	}

	// Reassignment stays within the meal's ward and must target a bookable
	// companionship, same as a fresh booking.
	if newMissionaryID != meal.MealMissionaryID {
		if missionary.MissionaryCongregationID != meal.MealCongregationID {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Missionary does not belong to this congregation")
		}
		if !missionary.MissionaryIsActive {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Missionary is not active")
		}
	}

	applyMealPatch(meal, req)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if revalidate {
			var clash int64
			if err := tx.Model(&mealModel.MealModel{}).
				Where("meal_missionary_id = ? AND meal_date = ? AND meal_cancelled = ? AND meal_id <> ?",
					newMissionaryID, newDate, false, meal.MealID).
				Count(&clash).Error; err != nil {
				return err
			}
			if clash > 0 {
				return conflictError(missionary.MissionaryType)
			}
		}
		return tx.Save(meal).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, conflictError(missionary.MissionaryType)
		}
		if fe, ok := err.(*fiber.Error); ok {
			return nil, fe
		}
		return nil, err
	}

	return meal, nil
}

/* ===================== CANCEL ===================== */

// CancelMeal soft-cancels and preserves every other field for history.
// Re-cancelling is a no-op: the unchanged record comes back with
// alreadyCancelled=true so the caller can skip notifications.
func (s *BookingService) CancelMeal(id uuid.UUID, reason *string) (*mealModel.MealModel, bool, error) {
	meal, err := s.findMeal(id)
	if err != nil {
		return nil, false, err
	}
	if meal.MealCancelled {
		return meal, true, nil
	}

	updates := map[string]interface{}{
		"meal_cancelled": true,
	}
	if reason != nil {
		updates["meal_cancellation_reason"] = *reason
	}
	if err := s.DB.Model(meal).Updates(updates).Error; err != nil {
		return nil, false, err
	}
	meal.MealCancelled = true
	meal.MealCancellationReason = reason

	return meal, false, nil
}

/* ===================== INTERNAL ===================== */

func (s *BookingService) findMeal(id uuid.UUID) (*mealModel.MealModel, error) {
	var meal mealModel.MealModel
	if err := s.DB.First(&meal, "meal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Meal not found")
		}
		return nil, err
	}
	return &meal, nil
}

func (s *BookingService) loadBookingTargets(congregationID, missionaryID uuid.UUID) (*congregationModel.CongregationModel, *missionaryModel.MissionaryModel, error) {
	var congregation congregationModel.CongregationModel
	if err := s.DB.First(&congregation, "congregation_id = ?", congregationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Congregation not found")
		}
		return nil, nil, err
	}
	if !congregation.CongregationIsActive {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Congregation not found")
	}

	var missionary missionaryModel.MissionaryModel
	if err := s.DB.First(&missionary, "missionary_id = ?", missionaryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "Missionary not found")
		}
		return nil, nil, err
	}
	if missionary.MissionaryCongregationID != congregationID {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Missionary does not belong to this congregation")
	}
	if !missionary.MissionaryIsActive {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Missionary is not active")
	}

	return &congregation, &missionary, nil
}

// normalizePhone strips the punctuation people type into phone fields so the
// caps compare digits rather than formatting.
func normalizePhone(p string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(p)
}

// normalizedPhoneColumn applies the same stripping to the stored value; plain
// nested replace() so it runs on both Postgres and the sqlite test driver.
const normalizedPhoneColumn = "replace(replace(replace(replace(meal_host_phone, ' ', ''), '-', ''), '(', ''), ')', '')"

// checkBookingCaps enforces the congregation's per-host limits inside the
// rolling booking window ending at the booked date. A cap of 0 is unlimited.
func (s *BookingService) checkBookingCaps(congregation *congregationModel.CongregationModel, cmd BookMealCommand) error {
	periodDays := congregation.CongregationBookingPeriodDays
	if periodDays < 1 {
		periodDays = 1
	}
	bookedDate, _ := time.Parse(mealModel.DateLayout, cmd.Date)
	windowStart := bookedDate.AddDate(0, 0, -(periodDays - 1)).Format(mealModel.DateLayout)

	base := func() *gorm.DB {
		return s.DB.Model(&mealModel.MealModel{}).
			Where("meal_congregation_id = ? AND meal_cancelled = ? AND meal_date >= ? AND meal_date <= ?",
				congregation.CongregationID, false, windowStart, cmd.Date)
	}

	phone := normalizePhone(cmd.HostPhone)

	if limit := congregation.CongregationMaxBookingsPerPhone; limit > 0 {
		var cnt int64
		if err := base().Where(normalizedPhoneColumn+" = ?", phone).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt >= int64(limit) {
			return fiber.NewError(fiber.StatusConflict,
				"This phone number has reached the booking limit for the current period")
		}
	}

	if limit := congregation.CongregationMaxBookingsPerAddress; limit > 0 && cmd.HostAddress != nil && *cmd.HostAddress != "" {
		var cnt int64
		if err := base().Where("lower(meal_host_address) = lower(?)", *cmd.HostAddress).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt >= int64(limit) {
			return fiber.NewError(fiber.StatusConflict,
				"This address has reached the booking limit for the current period")
		}
	}

	if limit := congregation.CongregationMaxBookingsPerPeriod; limit > 0 {
		var cnt int64
		if err := base().Where(normalizedPhoneColumn+" = ?", phone).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt >= int64(limit) {
			return fiber.NewError(fiber.StatusConflict,
				"Booking limit reached for the current period")
		}
	}

	return nil
}

func applyMealPatch(meal *mealModel.MealModel, req mealDTO.UpdateMealRequest) {
	if req.MissionaryID != nil {
		meal.MealMissionaryID = *req.MissionaryID
	}
	if req.Date != nil {
		meal.MealDate = *req.Date
	}
	if req.StartTime != nil {
		meal.MealStartTime = *req.StartTime
	}
	if req.HostName != nil {
		meal.MealHostName = *req.HostName
	}
	if req.HostPhone != nil {
		meal.MealHostPhone = *req.HostPhone
	}
	if req.HostEmail != nil {
		meal.MealHostEmail = req.HostEmail
	}
	if req.HostAddress != nil {
		meal.MealHostAddress = req.HostAddress
	}
	if req.MealDescription != nil {
		meal.MealDescription = req.MealDescription
	}
	if req.SpecialNotes != nil {
		meal.MealSpecialNotes = req.SpecialNotes
	}
}

func conflictError(t missionaryModel.MissionaryType) error {
	return fiber.NewError(fiber.StatusConflict,
		"The "+t.DisplayName()+" already have a meal scheduled for this date")
}

// isUniqueViolation detects the partial-index conflict under both Postgres
// (SQLSTATE 23505) and the sqlite test driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
