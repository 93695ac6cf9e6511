package handlers

import (
	"github.com/PrVille/json-mock-data-api-sub000/internal/middleware"
	"github.com/PrVille/json-mock-data-api-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PostHandler handles post resource routes
type PostHandler struct {
	DB *gorm.DB
}

// ListPosts handles GET /api/posts
// @Summary List posts
// @Description List the caller's posts with pagination and sorting
// @Tags Posts
// @Accept json
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param take query int false "Rows to return (max 100)"
// @Param sortBy query string false "Sort key"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} services.PostListResult
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	params, err := parseListParams(c, postSortKeys)
	if err != nil {
		return err
	}

	result, err := services.ListPosts(h.DB, middleware.CallerFrom(c), params)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GetPost handles GET /api/posts/:id
// @Summary Get post
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.PublicPost
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	post, err := services.GetPostByID(h.DB, middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// CreatePost handles POST /api/posts
// @Summary Create post
// @Tags Posts
// @Accept json
// @Produce json
// @Param body body services.CreatePostInput true "Post fields"
// @Success 200 {object} models.PublicPost
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var in services.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	post, err := services.CreatePost(h.DB, middleware.CallerFrom(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update post
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body services.UpdatePostInput true "Fields to change"
// @Success 200 {object} models.PublicPost
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	var in services.UpdatePostInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody()
	}

	post, err := services.UpdatePost(h.DB, middleware.CallerFrom(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete post
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.PublicPost
// @Failure 400 {object} utils.ErrorsEnvelope
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	post, err := services.DeletePost(h.DB, middleware.CallerFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(post)
}
