package controller

import (
	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the REST and WebSocket endpoints on app.
func RegisterRoutes(app *fiber.App, gameService *service.GameService, wsOrigins []string) {
	gameController := NewGameController(gameService)
	wsController := NewWebSocketController(gameService)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// Set up WebSocket routes
	app.Get("/ws/game/:gameId",
		middleware.EnsurePlayerID(),
		middleware.WebSocketUpgrade(gameService.GameExists),
		websocket.New(wsController.HandleConnection, websocket.Config{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			Origins:         wsOrigins,
		}),
	)

	// Set up REST routes
	api := app.Group("/api", middleware.EnsurePlayerID())
	api.Get("/games", gameController.ListGames)

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)
	gameRoutes.Get("/:gameId/moves", gameController.GetLegalMoves)
	gameRoutes.Get("/:gameId/board.svg", gameController.GetBoardSVG)
	gameRoutes.Post("/:gameId/move", gameController.MakeMove)
	gameRoutes.Post("/:gameId/undo", gameController.Undo)
	gameRoutes.Post("/:gameId/reset", gameController.Reset)
}
