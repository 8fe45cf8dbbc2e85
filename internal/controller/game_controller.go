package controller

import (
	"errors"

	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func playerIDFrom(c *fiber.Ctx) string {
	playerID, _ := c.Locals("playerID").(string)
	return playerID
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrGameExists),
		errors.Is(err, service.ErrNothingToUndo):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrNotSeated),
		errors.Is(err, service.ErrNotYourTurn):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidSquare):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, name, err := gc.gameService.CreateGame()
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"name":    name,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := playerIDFrom(c)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return sendError(c, err)
	}
	log.Infof("player %s joined game %s as %s", playerID, gameID, color)

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

// GetLegalMoves answers with all legal moves of the side to move, or with the
// moves of the piece on ?from= when given.
func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), c.Query("from"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"moves": moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req service.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}
	gameID := c.Params("gameId")
	if err := gc.gameService.HandleMove(gameID, playerIDFrom(c), req); err != nil {
		return sendError(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Undo(c *fiber.Ctx) error {
	if err := gc.gameService.Undo(c.Params("gameId"), playerIDFrom(c)); err != nil {
		return sendError(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) Reset(c *fiber.Ctx) error {
	if err := gc.gameService.Reset(c.Params("gameId"), playerIDFrom(c)); err != nil {
		return sendError(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) GetBoardSVG(c *fiber.Ctx) error {
	image, err := gc.gameService.BoardSVG(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.Send(image)
}
