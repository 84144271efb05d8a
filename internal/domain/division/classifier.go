// Package division implementa la clasificación de transacciones en divisiones
// de negocio: un cascade de reglas por prioridad (cliente → marca/sección →
// proveedor → heurística) con default fijo. La función es total y determinista:
// toda línea resuelve exactamente una división del conjunto cerrado.
package division

// Mode variante del cascade.
//
// Las ventas usan el cascade completo. Las devoluciones históricamente solo
// aplican reglas de marca/sección y la heurística de congelados (sin override
// por cliente ni fallback por proveedor); se conserva como modo aparte en vez
// de unificar, hasta que negocio confirme cuál es la intención.
type Mode int

const (
	// ModeFull cascade completo: override por cliente, reglas de marca/sección,
	// fallback por proveedor, heurística de congelados, default Dry Goods.
	ModeFull Mode = iota
	// ModeRulesOnly solo reglas de marca/sección y heurística de congelados.
	ModeRulesOnly
)

// ProductInfo datos ya resueltos del producto que el clasificador necesita.
// Los lookups (marca, sección, proveedor primario) se resuelven antes; campos
// vacíos simplemente no casan ninguna regla.
type ProductInfo struct {
	Name     string
	Brand    string
	Section  string
	Supplier string // nombre del proveedor primario; vacío si no hay
}

// Classify asigna una división de negocio a un producto/transacción.
// customerName solo se considera en ModeFull; puede ir vacío.
func Classify(p ProductInfo, customerName string, mode Mode) string {
	// 1) Override por cliente interno (solo cascade completo)
	if mode == ModeFull && containsAny(Fold(customerName), customerKeywords) {
		return Internal
	}

	// 2) Reglas de marca/sección en orden de declaración; primera que casa gana
	name := Fold(p.Name)
	brand := Fold(p.Brand)
	section := Fold(p.Section)
	for _, r := range rules {
		if containsAny(brand, r.Brands) || containsAny(name, r.Brands) || containsAny(section, r.Sections) {
			return r.Division
		}
	}

	// 3) Fallback por nombre de proveedor (solo cascade completo)
	if mode == ModeFull {
		supplier := Fold(p.Supplier)
		for _, r := range supplierRules {
			if containsAny(supplier, r.Brands) {
				return r.Division
			}
		}
	}

	// 4) Heurística de congelados
	if containsAny(section, frozenSectionKeywords) || containsAny(name, frozenProductKeywords) {
		return FrozenGoods
	}

	// 5) Default
	return DryGoods
}
