package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"semilla/internal/api"
	"semilla/internal/models"
)

// ErrSeedIncomplete reports that one or more submissions failed. Every
// remaining record is still attempted before the run returns it.
var ErrSeedIncomplete = errors.New("seeding finished with failures")

// Submitter is the API surface the Seeder depends on. Tests substitute an
// in-memory implementation.
type Submitter interface {
	CreateUsuario(ctx context.Context, in models.UsuarioCreate) (*models.Usuario, error)
	CreateProducto(ctx context.Context, in models.ProductoCreate) (*models.Producto, error)
	CreateCliente(ctx context.Context, in models.ClienteCreate) (*models.Cliente, error)
}

// Options configure one seeding run.
type Options struct {
	NumUsuarios  int
	NumProductos int
	NumClientes  int
}

// Tally counts submission outcomes for one record kind.
type Tally struct {
	Attempted int
	Succeeded int
	Failed    int
}

// Result is the aggregate outcome of one seeding run.
type Result struct {
	RunID     string
	Usuarios  Tally
	Productos Tally
	Clientes  Tally
}

// Attempted returns the total number of submissions across all kinds.
func (r *Result) Attempted() int {
	return r.Usuarios.Attempted + r.Productos.Attempted + r.Clientes.Attempted
}

// Failed returns the total number of failed submissions.
func (r *Result) Failed() int {
	return r.Usuarios.Failed + r.Productos.Failed + r.Clientes.Failed
}

// OK reports whether every submission succeeded.
func (r *Result) OK() bool {
	return r.Failed() == 0
}

// Seeder generates and submits synthetic records sequentially.
type Seeder struct {
	client  Submitter
	factory *Factory
	log     zerolog.Logger
}

// NewSeeder creates a Seeder using the given submitter, factory and log sink.
func NewSeeder(client Submitter, factory *Factory, logger zerolog.Logger) *Seeder {
	if factory == nil {
		factory = NewFactory()
	}
	return &Seeder{client: client, factory: factory, log: logger}
}

// Run seeds the configured number of usuarios, productos and clientes.
// A failed submission is logged and counted but never aborts the remaining
// iterations; the run fails only in its final summary judgment.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	log := s.log.With().Str("run_id", res.RunID).Logger()

	log.Info().
		Int("usuarios", opts.NumUsuarios).
		Int("productos", opts.NumProductos).
		Int("clientes", opts.NumClientes).
		Msg("seeding started")

	for i := 0; i < opts.NumUsuarios; i++ {
		u := s.factory.BuildUsuario()
		res.Usuarios.Attempted++
		created, err := s.client.CreateUsuario(ctx, u)
		if err != nil {
			res.Usuarios.Failed++
			logFailure(log, err, "usuario", u.Username)
			continue
		}
		res.Usuarios.Succeeded++
		log.Info().Str("kind", "usuario").Int("id", created.ID).Str("username", created.Username).Msg("created")
	}

	for i := 0; i < opts.NumProductos; i++ {
		p := s.factory.BuildProducto()
		res.Productos.Attempted++
		created, err := s.client.CreateProducto(ctx, p)
		if err != nil {
			res.Productos.Failed++
			logFailure(log, err, "producto", p.Nombre)
			continue
		}
		res.Productos.Succeeded++
		log.Info().Str("kind", "producto").Int("id", created.ID).Str("nombre", created.Nombre).Msg("created")
	}

	for i := 0; i < opts.NumClientes; i++ {
		c := s.factory.BuildCliente()
		res.Clientes.Attempted++
		created, err := s.client.CreateCliente(ctx, c)
		if err != nil {
			res.Clientes.Failed++
			logFailure(log, err, "cliente", c.Nombre)
			continue
		}
		res.Clientes.Succeeded++
		log.Info().Str("kind", "cliente").Int("id", created.ID).Str("nombre", created.Nombre).Msg("created")
	}

	if !res.OK() {
		log.Error().Int("failed", res.Failed()).Int("attempted", res.Attempted()).Msg("seeding finished with failures")
		return res, fmt.Errorf("%w: %d of %d submissions failed", ErrSeedIncomplete, res.Failed(), res.Attempted())
	}

	log.Info().Int("attempted", res.Attempted()).Msg("seeding completed")
	return res, nil
}

// logFailure writes one failure line, attaching the response status and
// error body when the error carries them.
func logFailure(log zerolog.Logger, err error, kind, name string) {
	ev := log.Error().Err(err).Str("kind", kind).Str("name", name)
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		ev = ev.Int("status", statusErr.StatusCode).Str("body", statusErr.Body)
	}
	ev.Msg("submission failed")
}
