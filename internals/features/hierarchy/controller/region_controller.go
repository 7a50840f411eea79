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

type RegionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRegionController(db *gorm.DB) *RegionController {
	return &RegionController{DB: db, Validate: validator.New()}
}

// POST /api/admin/regions
func (h *RegionController) Create(c *fiber.Ctx) error {
	var req hDTO.CreateRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create region")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Region created", m)
}

// GET /api/admin/regions
func (h *RegionController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&hModel.RegionModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count regions")
	}

	var items []hModel.RegionModel
	if err := h.DB.Order("region_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list regions")
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

// GET /api/admin/regions/:id
func (h *RegionController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": m})
}

// PATCH /api/admin/regions/:id
func (h *RegionController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req hDTO.UpdateRegionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyToModel(m)
	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update region")
	}
	return helper.Success(c, "Region updated", m)
}

// DELETE /api/admin/regions/:id (soft delete)
func (h *RegionController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.Delete(&hModel.RegionModel{}, "region_id = ?", m.RegionID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete region")
	}
	return helper.Success(c, "Region deleted", fiber.Map{"region_id": m.RegionID})
}

func (h *RegionController) findByID(raw string) (*hModel.RegionModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid region ID")
	}
	var m hModel.RegionModel
	if err := h.DB.First(&m, "region_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Region not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch region")
	}
	return &m, nil
}
