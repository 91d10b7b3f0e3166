package models

import "time"

// ClienteCreate is the request body for POST /clientes/.
type ClienteCreate struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

// Cliente is the created-resource representation returned by the API.
type Cliente struct {
	ID            int       `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Activo        bool      `json:"activo"`
}
