// Package models contains the wire types for the sales API consumed by the
// seeder. Field names follow the upstream contract, which is Spanish.
package models

import "time"

// Roles accepted by the usuarios endpoint.
const (
	RolAdmin      = "admin"
	RolVendedor   = "vendedor"
	RolSupervisor = "supervisor"
)

// Roles lists every valid rol value. Seed users draw from this set
// uniformly at random.
var Roles = []string{RolAdmin, RolVendedor, RolSupervisor}

// UsuarioCreate is the request body for POST /usuarios/.
type UsuarioCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// Usuario is the representation returned by the API once the service has
// assigned an identity.
type Usuario struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Rol           string    `json:"rol"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Activo        bool      `json:"activo"`
}

// ValidRol reports whether rol is one of the accepted role values.
func ValidRol(rol string) bool {
	for _, r := range Roles {
		if r == rol {
			return true
		}
	}
	return false
}
