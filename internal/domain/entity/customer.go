package entity

// Customer cliente (tienda) destinatario de facturas.
type Customer struct {
	Code      string
	StoreName string
	StoreType string
}
