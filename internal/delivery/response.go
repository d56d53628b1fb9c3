package delivery

import (
	"errors"

	"contact-service/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// respondContact - sends the {success, message} contact response
func respondContact(c *fiber.Ctx, status int, success bool, message string) error {
	return c.Status(status).JSON(domain.ContactResponse{
		Success: success,
		Message: message,
	})
}

// respondOutcome maps a submission outcome to a status code and message.
// Error details are logged and never sent to the client.
func respondOutcome(c *fiber.Ctx, outcome domain.Outcome) error {
	switch outcome.Kind {
	case domain.OutcomeAccepted:
		return respondContact(c, fiber.StatusOK, true, domain.MessageSent)

	case domain.OutcomeInvalid:
		return respondContact(c, fiber.StatusBadRequest, false, domain.MessageMissingFields)

	case domain.OutcomeRejected:
		log.Infow("Contact form rejected",
			"request_id", requestID(c),
			"error", outcome.Err,
		)
		return respondContact(c, fiber.StatusBadRequest, false, domain.MessageInvalidToken)

	default:
		return respondInternalError(c, outcome.Err)
	}
}

// respondInternalError - generic 500, detail goes to the log only
func respondInternalError(c *fiber.Ctx, err error) error {
	log.Errorw("Error handling contact form submission",
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	)
	return respondContact(c, fiber.StatusInternalServerError, false, domain.MessageInternalError)
}

// respondOK - success response (200)
func respondOK(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// ErrorHandler is the fiber error boundary. Routing errors such as 404 and 405
// keep their code; everything else becomes the generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return respondContact(c, fe.Code, false, fe.Message)
	}
	return respondInternalError(c, err)
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
