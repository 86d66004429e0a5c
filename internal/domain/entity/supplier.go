package entity

// Supplier proveedor de productos.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string
	ContactPhone *string
}

// ProductSupplier asociación muchos a muchos producto-proveedor.
type ProductSupplier struct {
	ProductID  int64
	SupplierID int64
	IsPrimary  bool // proveedor preferido del producto
}
