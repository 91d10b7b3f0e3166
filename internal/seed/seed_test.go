package seed

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"semilla/internal/api"
	"semilla/internal/models"
)

// stubSubmitter scripts per-call outcomes and records every submission.
type stubSubmitter struct {
	usuarioCalls  int
	productoCalls int
	clienteCalls  int

	// failUsuarioCall makes the nth (1-based) usuario submission fail.
	failUsuarioCall int
	failAll         bool
}

var errStub = &api.StatusError{StatusCode: http.StatusInternalServerError, Body: "boom"}

func (s *stubSubmitter) CreateUsuario(_ context.Context, in models.UsuarioCreate) (*models.Usuario, error) {
	s.usuarioCalls++
	if s.failAll || s.usuarioCalls == s.failUsuarioCall {
		return nil, errStub
	}
	return &models.Usuario{ID: s.usuarioCalls, Username: in.Username, Email: in.Email, Rol: in.Rol}, nil
}

func (s *stubSubmitter) CreateProducto(_ context.Context, in models.ProductoCreate) (*models.Producto, error) {
	s.productoCalls++
	if s.failAll {
		return nil, errStub
	}
	return &models.Producto{ID: s.productoCalls, Nombre: in.Nombre}, nil
}

func (s *stubSubmitter) CreateCliente(_ context.Context, in models.ClienteCreate) (*models.Cliente, error) {
	s.clienteCalls++
	if s.failAll {
		return nil, errStub
	}
	return &models.Cliente{ID: s.clienteCalls, Nombre: in.Nombre}, nil
}

func newTestSeeder(sub Submitter) *Seeder {
	return NewSeeder(sub, NewFactoryWithSeed(1), zerolog.Nop())
}

func TestRun_AllSuccess(t *testing.T) {
	sub := &stubSubmitter{}
	res, err := newTestSeeder(sub).Run(context.Background(), Options{NumUsuarios: 2, NumProductos: 1})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Usuarios.Attempted != 2 || res.Usuarios.Succeeded != 2 || res.Usuarios.Failed != 0 {
		t.Fatalf("unexpected usuario tally: %+v", res.Usuarios)
	}
	if res.Productos.Attempted != 1 || res.Productos.Succeeded != 1 {
		t.Fatalf("unexpected producto tally: %+v", res.Productos)
	}
	if !res.OK() || res.Failed() != 0 {
		t.Fatalf("expected overall success, got %+v", res)
	}
	if res.RunID == "" {
		t.Fatal("expected a run id")
	}
}

func TestRun_PartialFailureDoesNotAbort(t *testing.T) {
	sub := &stubSubmitter{failUsuarioCall: 2}
	res, err := newTestSeeder(sub).Run(context.Background(), Options{NumUsuarios: 2, NumProductos: 1})

	if !errors.Is(err, ErrSeedIncomplete) {
		t.Fatalf("expected ErrSeedIncomplete, got %v", err)
	}
	if res.Usuarios.Succeeded != 1 || res.Usuarios.Failed != 1 {
		t.Fatalf("unexpected usuario tally: %+v", res.Usuarios)
	}
	if sub.productoCalls != 1 {
		t.Fatalf("product submission should still occur, got %d calls", sub.productoCalls)
	}
	if res.OK() || res.Failed() != 1 {
		t.Fatalf("expected overall failure with one failed submission, got %+v", res)
	}
}

func TestRun_AttemptsExactlyConfiguredCounts(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"defaults", Options{NumUsuarios: 10, NumProductos: 30, NumClientes: 20}},
		{"zero counts", Options{}},
		{"clientes only", Options{NumClientes: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &stubSubmitter{}
			res, err := newTestSeeder(sub).Run(context.Background(), tt.opts)
			if err != nil {
				t.Fatalf("run: %v", err)
			}

			want := tt.opts.NumUsuarios + tt.opts.NumProductos + tt.opts.NumClientes
			if res.Attempted() != want {
				t.Fatalf("attempted %d, want %d", res.Attempted(), want)
			}
			if got := sub.usuarioCalls + sub.productoCalls + sub.clienteCalls; got != want {
				t.Fatalf("submitter saw %d calls, want %d", got, want)
			}
		})
	}
}

func TestRun_AllFailuresCounted(t *testing.T) {
	sub := &stubSubmitter{failAll: true}
	res, err := newTestSeeder(sub).Run(context.Background(), Options{NumUsuarios: 2, NumProductos: 2, NumClientes: 2})

	if !errors.Is(err, ErrSeedIncomplete) {
		t.Fatalf("expected ErrSeedIncomplete, got %v", err)
	}
	if res.Failed() != 6 || res.Attempted() != 6 {
		t.Fatalf("expected 6 failures of 6 attempts, got %+v", res)
	}
}
