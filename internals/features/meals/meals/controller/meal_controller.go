package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	mealDTO "missionmeals_backend/internals/features/meals/meals/dto"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
	"missionmeals_backend/internals/features/meals/meals/service"
	notifications "missionmeals_backend/internals/features/notifications"
	notificationModel "missionmeals_backend/internals/features/notifications/model"
	userModel "missionmeals_backend/internals/features/users/users/model"
	helper "missionmeals_backend/internals/helpers"
)

type MealController struct {
	DB         *gorm.DB
	Booking    *service.BookingService
	Dispatcher *notifications.Dispatcher
	Validate   *validator.Validate
}

func NewMealController(db *gorm.DB, dispatcher *notifications.Dispatcher) *MealController {
	return &MealController{
		DB:         db,
		Booking:    service.NewBookingService(db),
		Dispatcher: dispatcher,
		Validate:   validator.New(),
	}
}

// GET /api/meals?startDate=&endDate=&wardId=
func (h *MealController) List(c *fiber.Ctx) error {
	wardID, err := uuid.Parse(c.Query("wardId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid or missing wardId")
	}

	q := h.DB.Where("meal_congregation_id = ?", wardID)
	if from := c.Query("startDate"); from != "" {
		q = q.Where("meal_date >= ?", from)
	}
	if to := c.Query("endDate"); to != "" {
		q = q.Where("meal_date <= ?", to)
	}

	var meals []mealModel.MealModel
	if err := q.Order("meal_date, meal_start_time").Find(&meals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list meals")
	}

	// Attach missionary summaries in one extra query
	ids := make([]uuid.UUID, 0, len(meals))
	for _, m := range meals {
		ids = append(ids, m.MealMissionaryID)
	}
	summaries := map[uuid.UUID]missionaryModel.MissionarySummary{}
	if len(ids) > 0 {
		var rows []missionaryModel.MissionarySummary
		if err := h.DB.Model(&missionaryModel.MissionaryModel{}).
			Select("missionary_id, missionary_name, missionary_type, missionary_is_trio").
			Where("missionary_id IN ?", ids).
			Scan(&rows).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch missionaries")
		}
		for _, r := range rows {
			summaries[r.MissionaryID] = r
		}
	}

	out := make([]mealDTO.MealWithMissionary, 0, len(meals))
	for _, m := range meals {
		out = append(out, mealDTO.MealWithMissionary{
			Meal:       m,
			Missionary: summaries[m.MealMissionaryID],
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

// POST /api/meals
func (h *MealController) Create(c *fiber.Ctx) error {
	var req mealDTO.CreateMealRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	meal, err := h.Booking.BookMeal(service.BookMealCommand{
		MissionaryID:    req.MissionaryID,
		CongregationID:  req.WardID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		HostName:        req.HostName,
		HostPhone:       req.HostPhone,
		HostEmail:       req.HostEmail,
		HostAddress:     req.HostAddress,
		MealDescription: req.MealDescription,
		SpecialNotes:    req.SpecialNotes,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Notification is best-effort and must not stall the booking response.
	h.notifyMissionary(meal, notificationModel.MessageTypeMealCreated)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": meal})
}

// PATCH /api/meals/:id
func (h *MealController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid meal ID")
	}

	var req mealDTO.UpdateMealRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	meal, err := h.Booking.UpdateMeal(id, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	h.notifyMissionary(meal, notificationModel.MessageTypeMealUpdated)

	return c.JSON(fiber.Map{"data": meal})
}

// POST /api/meals/:id/cancel
func (h *MealController) Cancel(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid meal ID")
	}

	var req mealDTO.CancelMealRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}

	meal, alreadyCancelled, err := h.Booking.CancelMeal(id, req.Reason)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if !alreadyCancelled {
		h.notifyMissionary(meal, notificationModel.MessageTypeMealCancelled)
		h.notifyAdmins(meal)
	}

	return c.JSON(fiber.Map{"data": meal})
}

// POST /api/meals/check-availability
func (h *MealController) CheckAvailability(c *fiber.Ctx) error {
	var req mealDTO.CheckAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.MissionaryID == nil && req.MissionaryType == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Either missionaryId or missionaryType is required")
	}

	sel := service.Selector{MissionaryID: req.MissionaryID}
	if req.MissionaryType != nil {
		sel.MissionaryType = *req.MissionaryType
	}

	available, err := service.IsAvailable(h.DB, req.WardID, req.Date, sel)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"available": available})
}

/* ===================== NOTIFICATION SIDE EFFECTS ===================== */

func (h *MealController) notifyMissionary(meal *mealModel.MealModel, messageType string) {
	var missionary missionaryModel.MissionaryModel
	if err := h.DB.First(&missionary, "missionary_id = ?", meal.MealMissionaryID).Error; err != nil {
		log.Printf("[NOTIFY] missionary lookup failed for meal %s: %v", meal.MealID, err)
		return
	}

	ev := notifications.MealEvent{
		MealDate:           meal.MealDate,
		MealStartTime:      meal.MealStartTime,
		HostName:           meal.MealHostName,
		HostPhone:          meal.MealHostPhone,
		MealDescription:    meal.MealDescription,
		SpecialNotes:       meal.MealSpecialNotes,
		CancellationReason: meal.MealCancellationReason,
	}
	go h.Dispatcher.NotifyMealEvent(&missionary, messageType, ev)
}

// notifyAdmins emails the ward's linked admin users about a cancellation so
// the slot can be re-offered.
func (h *MealController) notifyAdmins(meal *mealModel.MealModel) {
	var emails []string
	if err := h.DB.Model(&userModel.UserModel{}).
		Joins("JOIN user_congregations ON user_congregation_user_id = user_id").
		Where("user_congregation_congregation_id = ? AND user_is_active = ?", meal.MealCongregationID, true).
		Pluck("user_email", &emails).Error; err != nil {
		log.Printf("[NOTIFY] admin lookup failed for meal %s: %v", meal.MealID, err)
		return
	}

	subject := "Meal cancelled on " + meal.MealDate
	body := meal.MealHostName + " cancelled the meal scheduled for " + meal.MealDate + " at " + meal.MealStartTime + "."
	if meal.MealCancellationReason != nil && *meal.MealCancellationReason != "" {
		body += " Reason: " + *meal.MealCancellationReason + "."
	}

	for _, email := range emails {
		addr := email
		go func() {
			if err := h.Dispatcher.Emailer.SendTo(addr, subject, body); err != nil {
				log.Printf("[NOTIFY] admin email to %s failed: %v", addr, err)
			}
		}()
	}
}
