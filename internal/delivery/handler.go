package delivery

import (
	"fmt"

	"contact-service/internal/domain"
	"contact-service/internal/service"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	contactService *service.ContactService
}

func NewHandler(contactService *service.ContactService) *Handler {
	return &Handler{
		contactService: contactService,
	}
}

// SubmitContact - POST /api/contact
func (h *Handler) SubmitContact(c *fiber.Ctx) error {
	var req domain.ContactRequest

	// Decoded as JSON whatever the Content-Type says
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return respondOutcome(c, domain.Failed(fmt.Errorf("%w: %v", domain.ErrInvalidBody, err)))
	}

	outcome := h.contactService.Submit(c.UserContext(), &req)

	return respondOutcome(c, outcome)
}

// Health - GET /health
func (h *Handler) Health(c *fiber.Ctx) error {
	return respondOK(c, fiber.Map{"status": "ok"})
}
