package entity

// Warehouse representa una bodega; pertenece a exactamente una empresa.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Address   string
}
