package handlers

import (
	"github.com/PrVille/json-mock-data-api-sub000/internal/middleware"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CommentHandler handles comment resource routes
type CommentHandler struct {
	DB *gorm.DB
}

// ListComments handles GET /api/comments
// @Summary List comments
// @Description List the caller's comments with pagination and sorting
// @Tags Comments
// @Accept json
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param take query int false "Rows to return (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} services.CommentListResult
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /comments [get]
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	params, err := parseListParams(c, commentSortKeys)
	if err != nil {
		return err
	}

	result, err := services.ListComments(h.DB, middleware.CallerFrom(c), params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetComment handles GET /api/comments/:id
// @Summary Get comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} models.PublicComment
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c *fiber.Ctx) error {
	comment, err := services.GetCommentByID(h.DB, middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// CreateComment handles POST /api/comments
// @Summary Create comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param body body services.CreateCommentInput true "Comment fields"
// @Success 200 {object} models.PublicComment
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /comments [post]
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	var in services.CreateCommentInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	comment, err := services.CreateComment(h.DB, middleware.CallerFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// UpdateComment handles PUT /api/comments/:id
// @Summary Update comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param body body services.UpdateCommentInput true "Fields to change"
// @Success 200 {object} models.PublicComment
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *fiber.Ctx) error {
	var in services.UpdateCommentInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	comment, err := services.UpdateComment(h.DB, middleware.CallerFrom(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}

// DeleteComment handles DELETE /api/comments/:id
// @Summary Delete comment
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} models.PublicComment
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *fiber.Ctx) error {
	comment, err := services.DeleteComment(h.DB, middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(comment)
}
