package repository

import "github.com/glowdesk/salon-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update solo toca metadatos; Quantity se cambia exclusivamente con
// UpdateQuantity dentro de la transacción del mutador de stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity int64) error
	List(category string, limit, offset int) ([]*entity.Product, error)
	// ListAll devuelve el snapshot completo (opcionalmente por categoría)
	// para las proyecciones de solo lectura.
	ListAll(category string) ([]*entity.Product, error)
	Delete(id string) error
	DeleteMany(ids []string) (int64, error)
	// ExistingIDs devuelve el subconjunto de ids que sí existen.
	ExistingIDs(ids []string) ([]string, error)
}
