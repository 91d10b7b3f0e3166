// Package mockapi is a local stand-in for the sales API consumed by the
// seeder. It implements only the surface the seeder touches (create and
// list for usuarios, productos and clientes) with in-memory storage, so a
// full upstream deployment is not needed to exercise a run end to end.
package mockapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// Server bundles the Fiber app and the in-memory store.
type Server struct {
	app   *fiber.App
	store *store
	log   zerolog.Logger
}

// New builds a Server with empty storage.
func New(logger zerolog.Logger) *Server {
	s := &Server{
		app:   fiber.New(fiber.Config{DisableStartupMessage: true}),
		store: newStore(),
		log:   logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.app.Use(recover.New())
	s.app.Use(requestid.New())

	s.app.Post("/usuarios/", s.createUsuario)
	s.app.Get("/usuarios/", s.listUsuarios)
	s.app.Post("/productos/", s.createProducto)
	s.app.Get("/productos/", s.listProductos)
	s.app.Post("/clientes/", s.createCliente)
	s.app.Get("/clientes/", s.listClientes)

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves the mock API on the given address until the app is shut down.
func (s *Server) Listen(addr string) error {
	s.log.Info().Str("addr", addr).Msg("mock API listening")
	return s.app.Listen(addr)
}

// detail mirrors FastAPI's error envelope so seeder logs look the same
// against the mock as against the real service.
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}
