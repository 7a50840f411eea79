package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "missionmeals_backend/internals/features/congregations/congregations/dto"
	cModel "missionmeals_backend/internals/features/congregations/congregations/model"
	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
	helper "missionmeals_backend/internals/helpers"
)

type CongregationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCongregationController(db *gorm.DB) *CongregationController {
	return &CongregationController{DB: db, Validate: validator.New()}
}

/* ===================== ADMIN HANDLERS ===================== */

// POST /api/admin/congregations
func (h *CongregationController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateCongregationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	code, err := helper.GenerateAccessCode()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate access code")
	}

	m := req.ToModel(code)
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create congregation")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Congregation created", m)
}

// GET /api/admin/congregations?stakeId=
func (h *CongregationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&cModel.CongregationModel{})
	if raw := c.Query("stakeId"); raw != "" {
		stakeID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid stakeId")
		}
		q = q.Where("congregation_stake_id = ?", stakeID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count congregations")
	}

	var items []cModel.CongregationModel
	if err := q.Order("congregation_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list congregations")
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

// GET /api/admin/congregations/:id
func (h *CongregationController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": m})
}

// PATCH /api/admin/congregations/:id
func (h *CongregationController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req cDTO.UpdateCongregationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update congregation")
	}
	return helper.Success(c, "Congregation updated", m)
}

// DELETE /api/admin/congregations/:id
// Soft-disables when meals or missionaries still reference the ward.
func (h *CongregationController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var refs int64
	if err := h.DB.Model(&missionaryModel.MissionaryModel{}).
		Where("missionary_congregation_id = ?", m.CongregationID).
		Count(&refs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check references")
	}
	if refs == 0 {
		if err := h.DB.Model(&mealModel.MealModel{}).
			Where("meal_congregation_id = ?", m.CongregationID).
			Count(&refs).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to check references")
		}
	}

	if refs > 0 {
		if err := h.DB.Model(m).Update("congregation_is_active", false).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate congregation")
		}
		return helper.Success(c, "Congregation has history and was deactivated instead of deleted",
			fiber.Map{"congregation_id": m.CongregationID})
	}

	if err := h.DB.Delete(&cModel.CongregationModel{}, "congregation_id = ?", m.CongregationID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete congregation")
	}
	return helper.Success(c, "Congregation deleted", fiber.Map{"congregation_id": m.CongregationID})
}

// POST /api/admin/congregations/:id/access-code
// Security-sensitive: every previously shared link/QR stops working.
func (h *CongregationController) RegenerateAccessCode(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	code, err := helper.GenerateAccessCode()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate access code")
	}

	if err := h.DB.Model(m).Update("congregation_access_code", code).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to regenerate access code")
	}
	m.CongregationAccessCode = code

	return helper.Success(c, "Access code regenerated; previously shared links are now invalid",
		fiber.Map{"congregation_id": m.CongregationID, "congregation_access_code": code})
}

// GET /api/admin/congregations/:id/stats
func (h *CongregationController) Stats(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var resp cDTO.CongregationStatsResponse
	today := time.Now().Format("2006-01-02")

	mq := h.DB.Model(&mealModel.MealModel{}).Where("meal_congregation_id = ?", m.CongregationID)
	if err := mq.Session(&gorm.Session{}).Count(&resp.TotalMeals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := mq.Session(&gorm.Session{}).
		Where("meal_cancelled = ? AND meal_date >= ?", false, today).
		Count(&resp.UpcomingMeals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := mq.Session(&gorm.Session{}).
		Where("meal_cancelled = ?", true).
		Count(&resp.CancelledMeals).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	if err := h.DB.Model(&missionaryModel.MissionaryModel{}).
		Where("missionary_congregation_id = ? AND missionary_is_active = ?", m.CongregationID, true).
		Count(&resp.ActiveMissionaries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}

	// meal_date is stored as YYYY-MM-DD text, so month bucketing is a substring.
	type monthRow struct {
		Month string
		Cnt   int64
	}
	var rows []monthRow
	if err := h.DB.Model(&mealModel.MealModel{}).
		Select("substr(meal_date, 1, 7) AS month, COUNT(*) AS cnt").
		Where("meal_congregation_id = ? AND meal_cancelled = ?", m.CongregationID, false).
		Group("substr(meal_date, 1, 7)").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to compute stats")
	}
	resp.MealsPerMonth = make(map[string]int64, len(rows))
	for _, r := range rows {
		resp.MealsPerMonth[r.Month] = r.Cnt
	}

	return c.JSON(fiber.Map{"data": resp})
}

/* ===================== PUBLIC HANDLERS ===================== */

// GET /api/public/congregations/:accessCode
// Access codes are bearer capabilities, not identifiers.
func (h *CongregationController) PublicByAccessCode(c *fiber.Ctx) error {
	code := c.Params("accessCode")
	if code == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing access code")
	}

	var m cModel.CongregationModel
	if err := h.DB.First(&m, "congregation_access_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Congregation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch congregation")
	}
	if !m.CongregationIsActive {
		return helper.Error(c, fiber.StatusNotFound, "Congregation not found")
	}

	var roster []missionaryModel.MissionarySummary
	if err := h.DB.Model(&missionaryModel.MissionaryModel{}).
		Select("missionary_id, missionary_name, missionary_type, missionary_is_trio").
		Where("missionary_congregation_id = ? AND missionary_is_active = ?", m.CongregationID, true).
		Order("missionary_name").
		Scan(&roster).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch roster")
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"congregation": cDTO.NewPublicCongregationResponse(&m),
			"missionaries": roster,
		},
	})
}

func (h *CongregationController) findByID(raw string) (*cModel.CongregationModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid congregation ID")
	}
	var m cModel.CongregationModel
	if err := h.DB.First(&m, "congregation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Congregation not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch congregation")
	}
	return &m, nil
}
