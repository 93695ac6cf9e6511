package handlers

import (
	"github.com/PrVille/json-mock-data-api-sub000/internal/middleware"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler handles user resource routes
type UserHandler struct {
	DB *gorm.DB
}

// ListUsers handles GET /api/users
// @Summary List users
// @Description List the caller's users with pagination and sorting
// @Tags Users
// @Accept json
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param take query int false "Rows to return (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} services.UserListResult
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params, err := parseListParams(c, userSortKeys)
	if err != nil {
		return err
	}

	result, err := services.ListUsers(h.DB, middleware.CallerFrom(c), params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetUser handles GET /api/users/:id
// @Summary Get user
// @Description Get one of the caller's users by id
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.PublicUser
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := services.GetUserByID(h.DB, middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// CreateUser handles POST /api/users
// @Summary Create user
// @Description Create a user in the caller's sandbox
// @Tags Users
// @Accept json
// @Produce json
// @Param body body services.CreateUserInput true "User fields"
// @Success 200 {object} models.PublicUser
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var in services.CreateUserInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	user, err := services.CreateUser(h.DB, middleware.CallerFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// UpdateUser handles PUT /api/users/:id
// @Summary Update user
// @Description Partially update one of the caller's users
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body services.UpdateUserInput true "Fields to change"
// @Success 200 {object} models.PublicUser
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var in services.UpdateUserInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	user, err := services.UpdateUser(h.DB, middleware.CallerFrom(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// DeleteUser handles DELETE /api/users/:id
// @Summary Delete user
// @Description Delete one of the caller's users; posts and comments cascade
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.PublicUser
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	user, err := services.DeleteUser(h.DB, middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
