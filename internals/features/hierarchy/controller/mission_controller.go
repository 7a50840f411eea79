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

type MissionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMissionController(db *gorm.DB) *MissionController {
	return &MissionController{DB: db, Validate: validator.New()}
}

// POST /api/admin/missions
func (h *MissionController) Create(c *fiber.Ctx) error {
	var req hDTO.CreateMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Parent region must exist
	var cnt int64
	if err := h.DB.Model(&hModel.RegionModel{}).
		Where("region_id = ?", req.MissionRegionID).Count(&cnt).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to verify region")
	}
	if cnt == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Region not found")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create mission")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mission created", m)
}

// GET /api/admin/missions?regionId=
func (h *MissionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&hModel.MissionModel{})
	if raw := c.Query("regionId"); raw != "" {
		regionID, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid regionId")
		}
		q = q.Where("mission_region_id = ?", regionID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count missions")
	}

	var items []hModel.MissionModel
	if err := q.Order("mission_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list missions")
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

// GET /api/admin/missions/:id
func (h *MissionController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": m})
}

// PATCH /api/admin/missions/:id
func (h *MissionController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req hDTO.UpdateMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update mission")
	}
	return helper.Success(c, "Mission updated", m)
}

// DELETE /api/admin/missions/:id (soft delete)
func (h *MissionController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.Delete(&hModel.MissionModel{}, "mission_id = ?", m.MissionID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete mission")
	}
	return helper.Success(c, "Mission deleted", fiber.Map{"mission_id": m.MissionID})
}

func (h *MissionController) findByID(raw string) (*hModel.MissionModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid mission ID")
	}
	var m hModel.MissionModel
	if err := h.DB.First(&m, "mission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Mission not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch mission")
	}
	return &m, nil
}
