package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/glowdesk/salon-api/internal/application/dto"
	"github.com/glowdesk/salon-api/internal/application/inventory"
	"github.com/glowdesk/salon-api/internal/domain"
	"github.com/glowdesk/salon-api/internal/domain/entity"
	"github.com/glowdesk/salon-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, borrado masivo y
// export CSV. Quantity no se edita aquí: pertenece al mutador de stock.
// El alta y el borrado masivo pasan por TxRunner porque tocan producto y
// ledger juntos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto. Si el stock inicial es mayor que cero, siembra
// el ledger con una entrada "restocked" equivalente en la misma
// transacción, de modo que el replay del historial reproduce Quantity
// desde el primer día.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Supplier:    in.Supplier,
		Category:    in.Category,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, historyRepo repository.HistoryRepository) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.Quantity == 0 {
			return nil
		}
		return historyRepo.Append(&entity.HistoryEntry{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			Action:          entity.ActionRestocked,
			QuantityChanged: in.Quantity,
			Reason:          "stock inicial",
			Timestamp:       now,
			CreatedBy:       userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza metadatos (name, price, supplier, category,
// description). Quantity nunca se modifica por este camino.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación y filtro opcional por categoría.
func (uc *ProductUseCase) List(category string, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto y, en cascada, todo su historial.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// DeleteMany borrado masivo con semántica todo-o-nada: cualquier id
// desconocido hace fallar el lote completo con ErrNotFound (nombrando los
// faltantes) sin borrar nada. Un subconjunto válido nunca afecta a
// productos fuera del lote.
func (uc *ProductUseCase) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: la lista de ids no puede estar vacía", domain.ErrInvalidInput)
	}

	var deleted int64
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.HistoryRepository) error {
		existing, err := productRepo.ExistingIDs(ids)
		if err != nil {
			return err
		}
		if missing := missingIDs(ids, existing); len(missing) > 0 {
			return fmt.Errorf("%w: ids inexistentes: %s", domain.ErrNotFound, strings.Join(missing, ", "))
		}
		deleted, err = productRepo.DeleteMany(ids)
		return err
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func missingIDs(requested, existing []string) []string {
	found := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}
	var missing []string
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// ── Export CSV ────────────────────────────────────────────────────────────────

// productCSVRow fila del export. gocsv se encarga del header y del
// quoting estándar (comas y comillas dentro de un campo).
type productCSVRow struct {
	Name        string          `csv:"name"`
	Quantity    int64           `csv:"quantity"`
	Price       decimal.Decimal `csv:"price"`
	Supplier    string          `csv:"supplier"`
	Category    string          `csv:"category"`
	Description string          `csv:"description"`
}

// Claves de ordenamiento aceptadas por ExportCSV.
const (
	SortByName     = "name"
	SortByQuantity = "quantity"
	SortByPrice    = "price"
)

// ExportCSV serializa la vista filtrada/ordenada de productos a CSV
// (header primero, una fila por producto). Sin efectos colaterales más
// allá de producir los bytes.
func (uc *ProductUseCase) ExportCSV(category, sortBy string) ([]byte, error) {
	products, err := uc.repo.ListAll(category)
	if err != nil {
		return nil, err
	}
	switch sortBy {
	case "", SortByName:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	case SortByQuantity:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Quantity < products[j].Quantity })
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price.LessThan(products[j].Price) })
	default:
		return nil, fmt.Errorf("%w: sort desconocido %q", domain.ErrInvalidInput, sortBy)
	}

	rows := make([]*productCSVRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, &productCSVRow{
			Name:        p.Name,
			Quantity:    p.Quantity,
			Price:       p.Price,
			Supplier:    p.Supplier,
			Category:    p.Category,
			Description: p.Description,
		})
	}
	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("serializar CSV: %w", err)
	}
	return []byte(out), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Supplier:    p.Supplier,
		Category:    p.Category,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
