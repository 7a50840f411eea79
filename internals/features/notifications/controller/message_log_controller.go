package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
	notifications "missionmeals_backend/internals/features/notifications"
	notificationModel "missionmeals_backend/internals/features/notifications/model"
	helper "missionmeals_backend/internals/helpers"
)

type MessageLogController struct {
	DB         *gorm.DB
	Dispatcher *notifications.Dispatcher
	Validate   *validator.Validate
}

func NewMessageLogController(db *gorm.DB, d *notifications.Dispatcher) *MessageLogController {
	return &MessageLogController{DB: db, Dispatcher: d, Validate: validator.New()}
}

// GET /api/admin/congregations/:id/message-logs
func (h *MessageLogController) ListByCongregation(c *fiber.Ctx) error {
	congregationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid congregation ID")
	}
	p := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&notificationModel.MessageLogModel{}).
		Where("message_log_congregation_id = ?", congregationID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count message logs")
	}

	var items []notificationModel.MessageLogModel
	if err := q.Order("message_log_sent_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list message logs")
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

type customMessageRequest struct {
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Body    string `json:"body" validate:"required,min=1,max=2000"`
}

// POST /api/admin/missionaries/:id/message
func (h *MessageLogController) SendCustom(c *fiber.Ctx) error {
	missionaryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid missionary ID")
	}

	var req customMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m missionaryModel.MissionaryModel
	if err := h.DB.First(&m, "missionary_id = ?", missionaryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Missionary not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch missionary")
	}

	ok := h.Dispatcher.Notify(&m, notificationModel.MessageTypeCustom, req.Subject, req.Body, fiber.Map{
		"subject": req.Subject,
	})

	return helper.Success(c, "Message dispatched", fiber.Map{"delivered": ok})
}
