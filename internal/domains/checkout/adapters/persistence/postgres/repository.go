package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
	"github.com/dmartlabs/shopping-api/internal/domains/checkout/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists orders in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table. Line items
// travel as a JSON document; product_ids duplicates their references in an
// indexed array column for reporting queries.
type orderRecord struct {
	ID              string           `gorm:"primaryKey;column:id;size:64"`
	CustomerName    string           `gorm:"column:customer_name"`
	CustomerEmail   string           `gorm:"column:customer_email;index"`
	CustomerAddress string           `gorm:"column:customer_address"`
	Items           []lineItemRecord `gorm:"column:items;serializer:json;type:jsonb"`
	ProductIDs      pq.StringArray   `gorm:"column:product_ids;type:text[];index:idx_orders_product_ids,type:gin"`
	Subtotal        decimal.Decimal  `gorm:"column:subtotal;type:numeric(12,2)"`
	Tax             decimal.Decimal  `gorm:"column:tax;type:numeric(12,2)"`
	Total           decimal.Decimal  `gorm:"column:total;type:numeric(12,2)"`
	InvoiceNumber   string           `gorm:"column:invoice_number;size:32;index"`
	CreatedAt       time.Time        `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type lineItemRecord struct {
	ProductID string          `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Create inserts the order once and returns it with its assigned identifier.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	record.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return record.toDomain(), nil
}

// GetByID fetches an order by identifier.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	items := make([]lineItemRecord, 0, len(order.Items))
	productIDs := make(pq.StringArray, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, lineItemRecord{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
		productIDs = append(productIDs, item.ProductID)
	}
	return orderRecord{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerAddress: order.CustomerAddress,
		Items:           items,
		ProductIDs:      productIDs,
		Subtotal:        order.Subtotal,
		Tax:             order.Tax,
		Total:           order.Total,
		InvoiceNumber:   order.InvoiceNumber,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	items := make([]domain.LineItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.LineItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}
	return &domain.Order{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerAddress: r.CustomerAddress,
		Items:           items,
		Subtotal:        r.Subtotal,
		Tax:             r.Tax,
		Total:           r.Total,
		InvoiceNumber:   r.InvoiceNumber,
	}
}
