package division

// Divisiones de negocio. Conjunto cerrado: el clasificador siempre devuelve
// exactamente uno de estos valores.
const (
	DryGoods            = "Dry Goods"
	FrozenGoods         = "Frozen Goods"
	Beverages           = "Beverages"
	PersonalCare        = "Personal Care"
	HouseholdEssentials = "Household Essentials"
	Internal            = "Internal / Others"
)

// All lista las divisiones en el orden en que se presentan en el dashboard.
var All = []string{DryGoods, FrozenGoods, Beverages, PersonalCare, HouseholdEssentials, Internal}

// Etiquetas centinela cuando un lookup no resuelve. Nunca rompen la agregación.
const (
	NoSupplier = "No Supplier"
	Unassigned = "Unassigned"
)

// Rule tabla de keywords de una división. El matching es por substring sobre
// texto normalizado (Fold). El orden de declaración de rules es un desempate
// en sí mismo y debe preservarse exactamente.
type Rule struct {
	Division string
	Brands   []string // casa contra nombre de marca O nombre de producto
	Sections []string // casa contra nombre de sección
}

// rules tabla estática, en orden de prioridad. Dry Goods va al final porque
// además es el default del cascade; sus keywords solo importan para ganarle
// al fallback por proveedor.
var rules = []Rule{
	{
		Division: FrozenGoods,
		Brands:   []string{"MAGNOLIA", "TENDER JUICY", "PUREFOODS", "CDO", "VIRGINIA", "BIG SHOT"},
		Sections: []string{"FROZEN", "MEAT", "ICE CREAM", "CHILLED"},
	},
	{
		Division: Beverages,
		Brands:   []string{"COCA-COLA", "COKE", "SPRITE", "ROYAL", "NESTEA", "KOPIKO", "ZESTO", "C2", "WILKINS"},
		Sections: []string{"BEVERAGE", "DRINKS", "JUICE", "SOFTDRINK", "WATER"},
	},
	{
		Division: PersonalCare,
		Brands:   []string{"SAFEGUARD", "PALMOLIVE", "COLGATE", "HEAD & SHOULDERS", "REXONA", "CLOSE UP", "CREAM SILK"},
		Sections: []string{"PERSONAL CARE", "TOILETRIES", "HYGIENE", "SOAP", "SHAMPOO"},
	},
	{
		Division: HouseholdEssentials,
		Brands:   []string{"SURF", "TIDE", "ARIEL", "DOWNY", "JOY", "ZONROX", "DOMEX", "CHAMPION"},
		Sections: []string{"HOUSEHOLD", "LAUNDRY", "CLEANING", "DETERGENT"},
	},
	{
		Division: DryGoods,
		Brands:   []string{"LUCKY ME", "NESCAFE", "MAGGI", "DEL MONTE", "ARGENTINA", "555", "UFC", "DATU PUTI", "SILVER SWAN", "PAYLESS"},
		Sections: []string{"GROCERY", "CANNED", "NOODLES", "CONDIMENT", "COFFEE", "DRY"},
	},
}

// supplierRules fallback por nombre de proveedor cuando las reglas de
// marca/sección no casan. También en orden de prioridad.
var supplierRules = []Rule{
	{Division: FrozenGoods, Brands: []string{"SAN MIGUEL FOODS", "MAGNOLIA", "CDO FOODSPHERE", "FROZEN"}},
	{Division: Beverages, Brands: []string{"COCA-COLA", "PEPSI", "BOTTLERS", "BEVERAGE"}},
	{Division: PersonalCare, Brands: []string{"PROCTER", "P&G", "COLGATE-PALMOLIVE"}},
	{Division: HouseholdEssentials, Brands: []string{"UNILEVER", "PEERLESS"}},
	{Division: DryGoods, Brands: []string{"MONDE NISSIN", "NESTLE", "UNIVERSAL ROBINA", "REPUBLIC BISCUIT"}},
}

// customerKeywords marcas de "consumo interno" en el nombre del cliente.
// Si el cliente casa aquí, la venta se clasifica como Internal / Others sin
// mirar el producto.
var customerKeywords = []string{
	"WALK-IN", "WALK IN", "WALKIN",
	"EMPLOYEE", "OFFICE", "INTERNAL", "STAFF", "PERSONAL USE", "OWN USE",
}

// Heurística final antes del default (paso 4 del cascade).
var (
	frozenSectionKeywords = []string{"FROZEN"}
	frozenProductKeywords = []string{"HOTDOG"}
)
