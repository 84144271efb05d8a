package analytics

import (
	"sort"

	"salesbi-api/internal/domain/division"
	"salesbi-api/internal/domain/entity"
)

// Lookups índices llave→valor construidos una vez por request a partir del
// snapshot crudo. Construcción pura: filas malformadas se saltan y jamás
// tumban el builder.
type Lookups struct {
	ProductByID      map[string]entity.Product
	ProductMaster    map[string]string // producto → producto maestro (él mismo si no tiene padre)
	PrimarySupplier  map[string]string // producto → proveedor primario (único y determinista)
	SupplierName     map[string]string
	BrandName        map[string]string
	SectionName      map[string]string
	SalesmanName     map[string]string
	SalesmanDivision map[string]string // vendedor → id de división organizacional
	DivisionName     map[string]string
	CustomerName     map[string]string // código de cliente → nombre de tienda
}

// BuildLookups construye todos los índices.
func BuildLookups(ds *Dataset) *Lookups {
	lk := &Lookups{
		ProductByID:      make(map[string]entity.Product, len(ds.Products)),
		ProductMaster:    make(map[string]string, len(ds.Products)),
		PrimarySupplier:  make(map[string]string),
		SupplierName:     make(map[string]string, len(ds.Suppliers)),
		BrandName:        make(map[string]string, len(ds.Brands)),
		SectionName:      make(map[string]string, len(ds.Sections)),
		SalesmanName:     make(map[string]string, len(ds.Salesmen)),
		SalesmanDivision: make(map[string]string, len(ds.Salesmen)),
		DivisionName:     make(map[string]string, len(ds.Divisions)),
		CustomerName:     make(map[string]string, len(ds.Customers)),
	}

	for _, p := range ds.Products {
		lk.ProductByID[p.ID] = p
		if p.ParentID != "" {
			lk.ProductMaster[p.ID] = p.ParentID
		} else {
			lk.ProductMaster[p.ID] = p.ID
		}
	}

	// Proveedor primario: filas ordenadas por id de desempate ascendente
	// (id faltante = 0) y gana la primera por producto.
	mappings := make([]entity.ProductSupplier, len(ds.ProductSuppliers))
	copy(mappings, ds.ProductSuppliers)
	sort.SliceStable(mappings, func(i, j int) bool {
		return mappings[i].TieBreakID < mappings[j].TieBreakID
	})
	for _, m := range mappings {
		if _, seen := lk.PrimarySupplier[m.ProductID]; !seen {
			lk.PrimarySupplier[m.ProductID] = m.SupplierID
		}
	}

	for _, s := range ds.Suppliers {
		lk.SupplierName[s.ID] = s.Name
	}
	for _, b := range ds.Brands {
		lk.BrandName[b.ID] = b.Name
	}
	for _, s := range ds.Sections {
		lk.SectionName[s.ID] = s.Name
	}
	for _, s := range ds.Salesmen {
		lk.SalesmanName[s.ID] = s.Name
		if s.DivisionID != "" {
			lk.SalesmanDivision[s.ID] = s.DivisionID
		}
	}
	for _, d := range ds.Divisions {
		lk.DivisionName[d.ID] = d.Name
	}
	for _, c := range ds.Customers {
		lk.CustomerName[c.Code] = c.StoreName
	}

	return lk
}

// Master resuelve el producto maestro; un producto desconocido es su propio maestro.
func (lk *Lookups) Master(productID string) string {
	if m, ok := lk.ProductMaster[productID]; ok && m != "" {
		return m
	}
	return productID
}

// SupplierLabel nombre del proveedor primario del producto, con centinela.
func (lk *Lookups) SupplierLabel(productID string) string {
	supplierID, ok := lk.PrimarySupplier[productID]
	if !ok {
		// El mapeo puede estar declarado sobre el maestro
		supplierID, ok = lk.PrimarySupplier[lk.Master(productID)]
	}
	if !ok {
		return division.NoSupplier
	}
	if name := lk.SupplierName[supplierID]; name != "" {
		return name
	}
	return division.NoSupplier
}

// ProductInfo arma el insumo del clasificador con los nombres ya resueltos.
// Campos no resolubles quedan vacíos: el cascade los ignora sin fallar.
func (lk *Lookups) ProductInfo(productID string) division.ProductInfo {
	p := lk.ProductByID[productID]
	info := division.ProductInfo{
		Name:    p.Name,
		Brand:   lk.BrandName[p.BrandID],
		Section: lk.SectionName[p.SectionID],
	}
	if label := lk.SupplierLabel(productID); label != division.NoSupplier {
		info.Supplier = label
	}
	return info
}

// SalesmanDivisionName división organizacional del vendedor, con centinela.
func (lk *Lookups) SalesmanDivisionName(salesmanID string) string {
	divID, ok := lk.SalesmanDivision[salesmanID]
	if !ok {
		return division.Unassigned
	}
	if name := lk.DivisionName[divID]; name != "" {
		return name
	}
	return division.Unassigned
}

// ProductLabel nombre de presentación del producto maestro para rankings.
func (lk *Lookups) ProductLabel(productID string) string {
	master := lk.Master(productID)
	if p, ok := lk.ProductByID[master]; ok && p.Name != "" {
		return p.Name
	}
	if p, ok := lk.ProductByID[productID]; ok && p.Name != "" {
		return p.Name
	}
	return "Product " + productID
}
