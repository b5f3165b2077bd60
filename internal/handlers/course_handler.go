package handlers

import (
	"uniapi/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CourseHandler struct {
	svc *services.CourseService
}

func NewCourseHandler(svc *services.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

type createCourseRequest struct {
	Code        string   `json:"code" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Credits     *int     `json:"credits" validate:"omitempty,gte=0,lte=10"`
	Instructor  string   `json:"instructor" validate:"required"`
	Tags        []string `json:"tags"`
}

func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var req createCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id, err := h.svc.Create(c.Context(), services.CreateCourseInput{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		Credits:     req.Credits,
		Instructor:  req.Instructor,
		Tags:        req.Tags,
	})
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"id": id})
}

// List supports an optional free-text query (q) over title, code and
// instructor, and an optional tag filter. With the store down this
// degrades to an empty list.
func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.svc.List(c.Context(), c.Query("q"), c.Query("tag"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(courses)
}
