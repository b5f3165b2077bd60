package handlers

import (
	"fmt"
	"os"

	"uniapi/internal/db"

	"github.com/gofiber/fiber/v2"
)

type SystemHandler struct {
	store *db.Store
}

func NewSystemHandler(store *db.Store) *SystemHandler {
	return &SystemHandler{store: store}
}

func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "University API is running"})
}

// Test reports store connectivity and the collection names, for quick
// deployment diagnostics.
func (h *SystemHandler) Test(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if !h.store.Connected() {
		return c.JSON(response)
	}

	response["database"] = "✅ Connected & Working"
	if os.Getenv("MONGO_URI") != "" {
		response["database_url"] = "✅ Set"
	} else {
		response["database_url"] = "❌ Not Set"
	}
	response["database_name"] = h.store.Name()
	response["connection_status"] = "Connected"

	names, err := h.store.CollectionNames(c.Context())
	if err != nil {
		response["database"] = fmt.Sprintf("⚠️ Connected but Error: %v", err)
		return c.JSON(response)
	}
	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names

	return c.JSON(response)
}
