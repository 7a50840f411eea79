package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"missionmeals_backend/internals/constants"
	userModel "missionmeals_backend/internals/features/users/users/model"
)

// RequireMinRole gates a route on the caller holding at least the given role.
func RequireMinRole(min string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if !constants.RoleAtLeast(role, min) {
			return fiber.NewError(fiber.StatusForbidden, "Insufficient role for this resource")
		}
		return c.Next()
	}
}

// RequireCongregationAccess lets stake+ roles through and requires ward-level
// users to be linked to the congregation named by the path param.
func RequireCongregationAccess(db *gorm.DB, param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		if constants.RoleAtLeast(role, constants.RoleStake) {
			return c.Next()
		}

		congregationID, err := uuid.Parse(c.Params(param))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid congregation ID")
		}
		userIDStr, _ := c.Locals("user_id").(string)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var cnt int64
		if err := db.Model(&userModel.UserCongregationModel{}).
			Where("user_congregation_user_id = ? AND user_congregation_congregation_id = ?", userID, congregationID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusForbidden, "You are not assigned to this congregation")
		}
		return c.Next()
	}
}
