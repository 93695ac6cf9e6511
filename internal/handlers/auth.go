package handlers

import (
	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthHandler handles signup and signin routes
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// SignUp handles POST /api/auth/signup
// @Summary Sign up
// @Description Create an api account with a seeded sandbox and issue a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SignUpInput true "Credentials"
// @Success 200 {object} models.AuthAccount
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in services.SignUpInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	account, err := services.SignUp(h.DB, h.Cfg, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(account)
}

// SignIn handles POST /api/auth/signin
// @Summary Sign in
// @Description Verify credentials and issue a fresh bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SignUpInput true "Credentials"
// @Success 200 {object} models.AuthAccount
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var in services.SignUpInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	account, err := services.SignIn(h.DB, h.Cfg, in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(account)
}
