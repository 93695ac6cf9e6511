package handlers

import (
	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/middleware"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AccountHandler handles account management routes. Every route is mounted
// behind middleware.RequireAccount, so :id always equals the caller's tenant.
type AccountHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// GetResources handles GET /api/account/:id/resources
// @Summary Get resource counts
// @Description Count the users, posts, and comments the account owns
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} services.AccountResources
// @Failure 401 {object} utils.ErrorsEnvelope
// @Failure 403 {object} utils.ErrorsEnvelope
// @Security BearerAuth
// @Router /account/{id}/resources [get]
func (h *AccountHandler) GetResources(c *fiber.Ctx) error {
	res, err := services.GetAccountResources(h.DB, middleware.CallerFrom(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// ClearResources handles DELETE /api/account/:id/resources
// @Summary Clear sandbox
// @Description Delete every resource the account owns
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} services.AccountResources
// @Failure 401 {object} utils.ErrorsEnvelope
// @Failure 403 {object} utils.ErrorsEnvelope
// @Security BearerAuth
// @Router /account/{id}/resources [delete]
func (h *AccountHandler) ClearResources(c *fiber.Ctx) error {
	res, err := services.ClearAccountResources(h.DB, middleware.CallerFrom(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// ResetResources handles POST /api/account/:id/resources
// @Summary Reset sandbox
// @Description Clear the sandbox and reseed the fixed synthetic batch
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} services.AccountResources
// @Failure 401 {object} utils.ErrorsEnvelope
// @Failure 403 {object} utils.ErrorsEnvelope
// @Security BearerAuth
// @Router /account/{id}/resources [post]
func (h *AccountHandler) ResetResources(c *fiber.Ctx) error {
	res, err := services.ResetAccountResources(h.DB, middleware.CallerFrom(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// UpdateEmail handles POST /api/account/:id/update/email
// @Summary Update account email
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param body body services.UpdateEmailInput true "New email"
// @Success 200 {object} models.PublicAccount
// @Failure 400 {object} utils.ErrorsEnvelope
// @Security BearerAuth
// @Router /account/{id}/update/email [post]
func (h *AccountHandler) UpdateEmail(c *fiber.Ctx) error {
	var in services.UpdateEmailInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	account, err := services.UpdateAccountEmail(h.DB, c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(account)
}

// UpdatePassword handles POST /api/account/:id/update/password
// @Summary Update account password
// @Description Change the password, gated by re-entry of the current one
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param body body services.UpdatePasswordInput true "Current and new password"
// @Success 200 {object} models.PublicAccount
// @Failure 400 {object} utils.ErrorsEnvelope
// @Security BearerAuth
// @Router /account/{id}/update/password [post]
func (h *AccountHandler) UpdatePassword(c *fiber.Ctx) error {
	var in services.UpdatePasswordInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	account, err := services.UpdateAccountPassword(h.DB, h.Cfg, c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(account)
}

// DeleteAccount handles DELETE /api/account/:id
// @Summary Delete account
// @Description Delete the account and everything it owns
// @Tags Account
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.PublicAccount
// @Failure 401 {object} utils.ErrorsEnvelope
// @Failure 403 {object} utils.ErrorsEnvelope
// @Security BearerAuth
// @Router /account/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *fiber.Ctx) error {
	account, err := services.DeleteAccount(h.DB, c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(account)
}
