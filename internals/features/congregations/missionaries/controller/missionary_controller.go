package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"missionmeals_backend/internals/configs"
	congregationModel "missionmeals_backend/internals/features/congregations/congregations/model"
	mDTO "missionmeals_backend/internals/features/congregations/missionaries/dto"
	mModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	mealModel "missionmeals_backend/internals/features/meals/meals/model"
	notifications "missionmeals_backend/internals/features/notifications"
	helper "missionmeals_backend/internals/helpers"
)

type MissionaryController struct {
	DB         *gorm.DB
	Dispatcher *notifications.Dispatcher
	Validate   *validator.Validate
}

func NewMissionaryController(db *gorm.DB, d *notifications.Dispatcher) *MissionaryController {
	return &MissionaryController{DB: db, Dispatcher: d, Validate: validator.New()}
}

/* ===================== ADMIN HANDLERS ===================== */

// POST /api/admin/missionaries
func (h *MissionaryController) Create(c *fiber.Ctx) error {
	var req mDTO.CreateMissionaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&congregationModel.CongregationModel{}).
		Where("congregation_id = ?", req.MissionaryCongregationID).
		Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify congregation")
	}
	if cnt == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Congregation not found")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create missionary")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Missionary created", m)
}

// GET /api/admin/missionaries?congregationId=&type=
func (h *MissionaryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&mModel.MissionaryModel{})
	if raw := c.Query("congregationId"); raw != "" {
		congregationID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid congregationId")
		}
		q = q.Where("missionary_congregation_id = ?", congregationID)
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("missionary_type = ?", strings.ToLower(t))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count missionaries")
	}

	var items []mModel.MissionaryModel
	if err := q.Order("missionary_name").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list missionaries")
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

// GET /api/admin/missionaries/:id
func (h *MissionaryController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": m})
}

// PATCH /api/admin/missionaries/:id
func (h *MissionaryController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req mDTO.UpdateMissionaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update missionary")
	}
	return helper.Success(c, "Missionary updated", m)
}

// DELETE /api/admin/missionaries/:id
// Deactivates instead of deleting once historical meals exist.
func (h *MissionaryController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var mealCount int64
	if err := h.DB.Model(&mealModel.MealModel{}).
		Where("meal_missionary_id = ?", m.MissionaryID).
		Count(&mealCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check meal history")
	}

	if mealCount > 0 {
		if err := h.DB.Model(m).Update("missionary_is_active", false).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to deactivate missionary")
		}
		return helper.Success(c, "Missionary has meal history and was deactivated instead of deleted",
			fiber.Map{"missionary_id": m.MissionaryID})
	}

	if err := h.DB.Delete(&mModel.MissionaryModel{}, "missionary_id = ?", m.MissionaryID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete missionary")
	}
	return helper.Success(c, "Missionary deleted", fiber.Map{"missionary_id": m.MissionaryID})
}

/* ===================== PUBLIC HANDLERS ===================== */

// POST /api/public/missionaries/register
// Self-registration restricted to the allowed email domain; the record stays
// inactive until the emailed code is verified.
func (h *MissionaryController) Register(c *fiber.Ctx) error {
	var req mDTO.RegisterMissionaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	allowedDomain := configs.GetEnv("ALLOWED_MISSIONARY_EMAIL_DOMAIN", "missionary.org")
	email := strings.ToLower(strings.TrimSpace(req.MissionaryEmail))
	if !strings.HasSuffix(email, "@"+allowedDomain) {
		return helper.Error(c, fiber.StatusBadRequest,
			"Registration requires a @"+allowedDomain+" email address")
	}

	var congregation congregationModel.CongregationModel
	if err := h.DB.First(&congregation, "congregation_access_code = ?", req.AccessCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Congregation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch congregation")
	}
	if !congregation.CongregationIsActive {
		return helper.Error(c, fiber.StatusNotFound, "Congregation not found")
	}

	var existing int64
	if err := h.DB.Model(&mModel.MissionaryModel{}).
		Where("missionary_email_address = ?", email).
		Count(&existing).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to check registration")
	}
	if existing > 0 {
		return helper.Error(c, fiber.StatusConflict, "This email address is already registered")
	}

	code, err := helper.GenerateVerificationCode()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to generate verification code")
	}

	m := &mModel.MissionaryModel{
		MissionaryID:                       uuid.New(),
		MissionaryCongregationID:           congregation.CongregationID,
		MissionaryName:                     req.MissionaryName,
		MissionaryType:                     req.MissionaryType,
		MissionaryPhoneNumber:              req.MissionaryPhoneNumber,
		MissionaryEmailAddress:             &email,
		MissionaryPreferredNotification:    mModel.ChannelEmail,
		MissionaryNotificationScheduleType: "before_each_meal",
		MissionaryIsActive:                 false,
		MissionaryConsentStatus:            mModel.ConsentPending,
		MissionaryVerificationCode:         &code,
	}
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register missionary")
	}

	go h.Dispatcher.SendVerificationEmail(m, code)

	return helper.SuccessWithCode(c, fiber.StatusCreated,
		"Registration received. Check your email for the verification code.",
		fiber.Map{"missionary_id": m.MissionaryID})
}

// POST /api/public/missionaries/verify
func (h *MissionaryController) Verify(c *fiber.Ctx) error {
	var req mDTO.VerifyMissionaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.MissionaryEmail))
	var m mModel.MissionaryModel
	if err := h.DB.First(&m, "missionary_email_address = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}

	if m.MissionaryVerificationCode == nil || *m.MissionaryVerificationCode != req.VerificationCode {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid verification code")
	}

	if err := h.DB.Model(&m).Updates(map[string]interface{}{
		"missionary_is_active":         true,
		"missionary_verification_code": nil,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify missionary")
	}

	return helper.Success(c, "Missionary verified and activated", fiber.Map{"missionary_id": m.MissionaryID})
}

// POST /api/public/missionaries/consent
// Missionary-portal consent update, authorized by the congregation access code.
func (h *MissionaryController) UpdateConsent(c *fiber.Ctx) error {
	var req mDTO.ConsentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var congregation congregationModel.CongregationModel
	if err := h.DB.First(&congregation, "congregation_access_code = ?", req.AccessCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Congregation not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch congregation")
	}

	var m mModel.MissionaryModel
	if err := h.DB.First(&m,
		"missionary_id = ? AND missionary_congregation_id = ?",
		req.MissionaryID, congregation.CongregationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Missionary not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch missionary")
	}

	if err := h.DB.Model(&m).Update("missionary_consent_status", req.ConsentStatus).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update consent")
	}
	m.MissionaryConsentStatus = req.ConsentStatus

	return helper.Success(c, "Consent updated", m)
}

func (h *MissionaryController) findByID(raw string) (*mModel.MissionaryModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid missionary ID")
	}
	var m mModel.MissionaryModel
	if err := h.DB.First(&m, "missionary_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Missionary not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch missionary")
	}
	return &m, nil
}
