// Package seed generates synthetic records and submits them to the sales
// API. These helpers are intended for development and staging only.
package seed

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"semilla/internal/models"
)

// Every seed account shares the same throwaway password so developers can
// log in as any of them.
const seedPassword = "password123"

// Factory builds schema-valid seed records. It is a thin helper used by the
// Seeder and by tests. Optional override functions may modify a generated
// record before submission.
type Factory struct {
	faker *gofakeit.Faker
}

// NewFactory creates a Factory with a time-seeded random source.
func NewFactory() *Factory {
	return NewFactoryWithSeed(time.Now().UnixNano())
}

// NewFactoryWithSeed creates a Factory with a fixed random seed, useful for
// deterministic tests.
func NewFactoryWithSeed(seed int64) *Factory {
	return &Factory{faker: gofakeit.New(seed)}
}

// BuildUsuario constructs a sample user create request. The rol is drawn
// uniformly from the fixed role set.
func (f *Factory) BuildUsuario(overrides ...func(*models.UsuarioCreate)) models.UsuarioCreate {
	u := models.UsuarioCreate{
		Username: f.faker.Username(),
		Email:    f.faker.Email(),
		Password: seedPassword,
		Rol:      f.faker.RandomString(models.Roles),
	}
	for _, override := range overrides {
		override(&u)
	}
	return u
}

// BuildProducto constructs a sample product create request. Prices are
// strictly positive and rounded to two decimal places.
func (f *Factory) BuildProducto(overrides ...func(*models.ProductoCreate)) models.ProductoCreate {
	precio := decimal.NewFromFloat(f.faker.Float64Range(10, 1000)).Round(2)

	p := models.ProductoCreate{
		Nombre:      f.faker.ProductName(),
		Descripcion: f.faker.Sentence(12),
		Precio:      precio.InexactFloat64(),
		Stock:       f.faker.Number(0, 100),
		Categoria:   f.faker.RandomString(models.Categorias),
	}
	for _, override := range overrides {
		override(&p)
	}
	return p
}

// BuildCliente constructs a sample client create request.
func (f *Factory) BuildCliente(overrides ...func(*models.ClienteCreate)) models.ClienteCreate {
	c := models.ClienteCreate{
		Nombre:   f.faker.Name(),
		Email:    f.faker.Email(),
		Telefono: f.faker.Phone(),
	}
	for _, override := range overrides {
		override(&c)
	}
	return c
}
