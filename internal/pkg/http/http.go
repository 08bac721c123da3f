package http

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

func SetupHttpEngine() *fiber.App {
	return fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
	})
}

func StartHttpServer(app *fiber.App, port string) {
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start http server: %v", err)
	}
}
