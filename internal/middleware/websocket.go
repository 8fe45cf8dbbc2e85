package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/websocket/v2"
)

// WebSocketUpgrade admits an upgrade to /ws/game/:gameId only for a known
// game and an identified player. gameExists is consulted before upgrading so
// clients get a plain 404 instead of a socket that closes immediately.
func WebSocketUpgrade(gameExists func(gameID string) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		gameID := c.Params("gameId")
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}
		if !gameExists(gameID) {
			log.Debugf("websocket upgrade for unknown game %s", gameID)
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "game not found",
			})
		}

		// Set by EnsurePlayerID
		playerID, _ := c.Locals("playerID").(string)
		if playerID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "player ID is required",
			})
		}

		// The upgraded connection has its own context, so carry the ids over in locals.
		c.Locals("wsGameID", utils.CopyString(gameID))
		c.Locals("wsPlayerID", playerID)

		return c.Next()
	}
}
