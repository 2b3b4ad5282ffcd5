package server

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the JSON body for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondJSON writes a JSON response with a status code.
func respondJSON(c *fiber.Ctx, status int, v interface{}) (err error) {
	err = c.Status(status).JSON(v)
	return err
}

// respondError writes a JSON error response.
func respondError(c *fiber.Ctx, status int, message string) (err error) {
	err = respondJSON(c, status, ErrorResponse{Message: message})
	return err
}
