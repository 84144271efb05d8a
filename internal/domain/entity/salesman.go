package entity

// Salesman vendedor de campo; pertenece a una división organizacional.
type Salesman struct {
	ID         string
	Name       string
	DivisionID string
}

// Division unidad organizacional de ventas según el item store.
// No confundir con la división de negocio que asigna el clasificador:
// esta es la que declara el backend para agrupar vendedores y cobranzas.
type Division struct {
	ID   string
	Name string
}
