package mockapi

import (
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"semilla/internal/models"
)

func (s *Server) createUsuario(c *fiber.Ctx) error {
	var in models.UsuarioCreate
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}
	if in.Username == "" || in.Password == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "username and password are required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "email is not valid")
	}
	if !models.ValidRol(in.Rol) {
		return detail(c, fiber.StatusUnprocessableEntity, "rol is not valid")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return detail(c, fiber.StatusInternalServerError, "could not hash password")
	}

	u, ok := s.store.addUsuario(in, string(hashed))
	if !ok {
		return detail(c, fiber.StatusBadRequest, "username o email ya registrado")
	}

	s.log.Info().Int("id", u.ID).Str("username", u.Username).Msg("usuario created")
	return c.Status(fiber.StatusCreated).JSON(u)
}

func (s *Server) listUsuarios(c *fiber.Ctx) error {
	return c.JSON(s.store.listUsuarios())
}

func (s *Server) createProducto(c *fiber.Ctx) error {
	var in models.ProductoCreate
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}
	if in.Nombre == "" {
		return detail(c, fiber.StatusUnprocessableEntity, "nombre is required")
	}
	if in.Precio <= 0 {
		return detail(c, fiber.StatusUnprocessableEntity, "precio must be positive")
	}
	if in.Stock < 0 {
		return detail(c, fiber.StatusUnprocessableEntity, "stock must not be negative")
	}

	p := s.store.addProducto(in)
	s.log.Info().Int("id", p.ID).Str("nombre", p.Nombre).Msg("producto created")
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) listProductos(c *fiber.Ctx) error {
	return c.JSON(s.store.listProductos())
}

func (s *Server) createCliente(c *fiber.Ctx) error {
	var in models.ClienteCreate
	if err := c.BodyParser(&in); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "invalid request body")
	}
	if len(in.Nombre) < 2 || len(in.Nombre) > 100 {
		return detail(c, fiber.StatusUnprocessableEntity, "nombre must be between 2 and 100 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return detail(c, fiber.StatusUnprocessableEntity, "email is not valid")
	}

	cl := s.store.addCliente(in)
	s.log.Info().Int("id", cl.ID).Str("nombre", cl.Nombre).Msg("cliente created")
	return c.Status(fiber.StatusCreated).JSON(cl)
}

func (s *Server) listClientes(c *fiber.Ctx) error {
	return c.JSON(s.store.listClientes())
}
