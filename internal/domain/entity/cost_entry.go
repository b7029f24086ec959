package entity

// CostEntry es el costo estándar de una etiqueta publicado por un proveedor de etiquetas.
// La clave es (VendorName, ProductLabel); VendorName es una referencia blanda al registro.
type CostEntry struct {
	VendorName   string
	ProductLabel string
	Cost         uint64
}
