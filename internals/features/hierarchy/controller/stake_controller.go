package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hDTO "missionmeals_backend/internals/features/hierarchy/dto"
	hModel "missionmeals_backend/internals/features/hierarchy/model"
	helper "missionmeals_backend/internals/helpers"
)

type StakeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStakeController(db *gorm.DB) *StakeController {
	return &StakeController{DB: db, Validate: validator.New()}
}

// POST /api/admin/stakes
func (h *StakeController) Create(c *fiber.Ctx) error {
	var req hDTO.CreateStakeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var cnt int64
	if err := h.DB.Model(&hModel.MissionModel{}).
		Where("mission_id = ?", req.StakeMissionID).Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify mission")
	}
	if cnt == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Mission not found")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create stake")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Stake created", m)
}

// GET /api/admin/stakes?missionId=
func (h *StakeController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&hModel.StakeModel{})
	if raw := c.Query("missionId"); raw != "" {
		missionID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid missionId")
		}
		q = q.Where("stake_mission_id = ?", missionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count stakes")
	}

	var items []hModel.StakeModel
	if err := q.Order("stake_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list stakes")
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

// GET /api/admin/stakes/:id
func (h *StakeController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": m})
}

// PATCH /api/admin/stakes/:id
func (h *StakeController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req hDTO.UpdateStakeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update stake")
	}
	return helper.Success(c, "Stake updated", m)
}

// DELETE /api/admin/stakes/:id (soft delete)
func (h *StakeController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.Delete(&hModel.StakeModel{}, "stake_id = ?", m.StakeID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete stake")
	}
	return helper.Success(c, "Stake deleted", fiber.Map{"stake_id": m.StakeID})
}

func (h *StakeController) findByID(raw string) (*hModel.StakeModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid stake ID")
	}
	var m hModel.StakeModel
	if err := h.DB.First(&m, "stake_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Stake not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch stake")
	}
	return &m, nil
}
