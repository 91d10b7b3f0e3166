package models

import "time"

// Categorias is the fixed category catalogue the upstream service expects.
var Categorias = []string{
	"Electrónica", "Ropa", "Hogar", "Deportes", "Libros",
	"Juguetes", "Jardín", "Automotriz", "Oficina", "Mascotas",
}

// ProductoCreate is the request body for POST /productos/.
// Precio is a plain JSON number with two decimal places.
type ProductoCreate struct {
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Categoria   string  `json:"categoria"`
}

// Producto is the created-resource representation returned by the API.
type Producto struct {
	ID              int       `json:"id"`
	Nombre          string    `json:"nombre"`
	Descripcion     string    `json:"descripcion"`
	Precio          float64   `json:"precio"`
	Stock           int       `json:"stock"`
	Categoria       string    `json:"categoria"`
	FechaCreacion   time.Time `json:"fecha_creacion"`
	VentasUltimoMes int       `json:"ventas_ultimo_mes"`
	BajaRotacion    bool      `json:"baja_rotacion"`
}

// ValidCategoria reports whether categoria is part of the fixed catalogue.
func ValidCategoria(categoria string) bool {
	for _, c := range Categorias {
		if c == categoria {
			return true
		}
	}
	return false
}
