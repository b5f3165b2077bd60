package handlers

import (
	"uniapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

type EnrollmentHandler struct {
	svc *services.EnrollmentService
}

func NewEnrollmentHandler(svc *services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

type enrollRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	CourseID string `json:"course_id" validate:"required"`
}

func (h *EnrollmentHandler) Enroll(c *fiber.Ctx) error {
	var req enrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	enrollment, err := h.svc.Enroll(c.Context(), req.UserID, req.CourseID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"id":     enrollment.ID.Hex(),
		"status": enrollment.Status,
	})
}

func (h *EnrollmentHandler) ListForUser(c *fiber.Ctx) error {
	details, err := h.svc.ListForUser(c.Context(), c.Params("user_id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(details)
}
