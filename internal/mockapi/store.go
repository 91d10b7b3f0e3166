package mockapi

import (
	"sync"
	"time"

	"semilla/internal/models"
)

// store is the in-memory backing state. Records live only as long as the
// process; seeding against the mock always starts from a clean slate.
type store struct {
	mu sync.Mutex

	nextUsuarioID  int
	nextProductoID int
	nextClienteID  int

	usuarios  []models.Usuario
	productos []models.Producto
	clientes  []models.Cliente

	// hashed passwords by usuario id, kept off the wire type
	passwords map[int]string
}

func newStore() *store {
	return &store{passwords: make(map[int]string)}
}

func (st *store) addUsuario(in models.UsuarioCreate, hashedPassword string) (models.Usuario, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, u := range st.usuarios {
		if u.Username == in.Username || u.Email == in.Email {
			return models.Usuario{}, false
		}
	}

	st.nextUsuarioID++
	u := models.Usuario{
		ID:            st.nextUsuarioID,
		Username:      in.Username,
		Email:         in.Email,
		Rol:           in.Rol,
		FechaRegistro: time.Now().UTC(),
		Activo:        true,
	}
	st.usuarios = append(st.usuarios, u)
	st.passwords[u.ID] = hashedPassword
	return u, true
}

func (st *store) addProducto(in models.ProductoCreate) models.Producto {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.nextProductoID++
	p := models.Producto{
		ID:            st.nextProductoID,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		Precio:        in.Precio,
		Stock:         in.Stock,
		Categoria:     in.Categoria,
		FechaCreacion: time.Now().UTC(),
	}
	st.productos = append(st.productos, p)
	return p
}

func (st *store) addCliente(in models.ClienteCreate) models.Cliente {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.nextClienteID++
	c := models.Cliente{
		ID:            st.nextClienteID,
		Nombre:        in.Nombre,
		Email:         in.Email,
		Telefono:      in.Telefono,
		FechaRegistro: time.Now().UTC(),
		Activo:        true,
	}
	st.clientes = append(st.clientes, c)
	return c
}

func (st *store) listUsuarios() []models.Usuario {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]models.Usuario(nil), st.usuarios...)
}

func (st *store) listProductos() []models.Producto {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]models.Producto(nil), st.productos...)
}

func (st *store) listClientes() []models.Cliente {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]models.Cliente(nil), st.clientes...)
}
