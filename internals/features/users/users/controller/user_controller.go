package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	uDTO "missionmeals_backend/internals/features/users/users/dto"
	uModel "missionmeals_backend/internals/features/users/users/model"
	helper "missionmeals_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// POST /api/admin/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req uDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := req.ToModel(string(hash))
	if err := h.DB.Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", m)
}

// GET /api/admin/users
func (h *UserController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&uModel.UserModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var items []uModel.UserModel
	if err := h.DB.Order("user_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&items).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to list users")
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p, len(items)),
	})
}

// GET /api/admin/users/:id
func (h *UserController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": m})
}

// PATCH /api/admin/users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req uDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.UserName != nil {
		m.UserName = *req.UserName
	}
	if req.UserEmail != nil {
		m.UserEmail = *req.UserEmail
	}
	if req.UserPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.UserPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		m.UserPassword = string(hash)
	}
	if req.UserRole != nil {
		m.UserRole = *req.UserRole
	}
	if req.UserIsActive != nil {
		m.UserIsActive = *req.UserIsActive
	}

	if err := h.DB.Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.Success(c, "User updated", m)
}

// DELETE /api/admin/users/:id (soft delete)
func (h *UserController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.Delete(&uModel.UserModel{}, "user_id = ?", m.UserID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.Success(c, "User deleted", fiber.Map{"user_id": m.UserID})
}

// POST /api/admin/users/:id/congregations
func (h *UserController) LinkCongregation(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req uDTO.LinkCongregationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	link := uModel.UserCongregationModel{
		UserCongregationID:             uuid.New(),
		UserCongregationUserID:         m.UserID,
		UserCongregationCongregationID: req.CongregationID,
	}
	if err := h.DB.Create(&link).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "User is already linked to this congregation")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Congregation linked", link)
}

// DELETE /api/admin/users/:id/congregations/:congregationId
func (h *UserController) UnlinkCongregation(c *fiber.Ctx) error {
	m, err := h.findByID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	congregationID, err := uuid.Parse(c.Params("congregationId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid congregation ID")
	}

	res := h.DB.Delete(&uModel.UserCongregationModel{},
		"user_congregation_user_id = ? AND user_congregation_congregation_id = ?", m.UserID, congregationID)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to unlink congregation")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Link not found")
	}
	return helper.Success(c, "Congregation unlinked", nil)
}

func (h *UserController) findByID(raw string) (*uModel.UserModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}
	var m uModel.UserModel
	if err := h.DB.First(&m, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch user")
	}
	return &m, nil
}
