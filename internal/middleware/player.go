package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
)

// EnsurePlayerID stores the caller's player id in c.Locals("playerID"),
// taken from the X-Player-ID header or the playerId query parameter.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check if playerID is already set
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		// Check header first
		playerID := strings.TrimSpace(c.Get("X-Player-ID"))
		if playerID == "" {
			playerID = strings.TrimSpace(c.Query("playerId"))
		}

		if playerID == "" {
			log.Debugf("rejecting %s %s: no player id", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		// Header and query values alias fasthttp's reusable buffers, and the id
		// outlives the request as a seat and connection key.
		c.Locals("playerID", utils.CopyString(playerID))
		return c.Next()
	}
}
