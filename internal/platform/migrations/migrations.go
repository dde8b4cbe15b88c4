package migrations

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&productRecord{},
		&orderRecord{},
	)
}

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID          string          `gorm:"primaryKey;column:id;size:64"`
	Title       string          `gorm:"column:title"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	CreatedAt   time.Time       `gorm:"column:created_at;index"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Order schema mirrors the checkout Postgres adapter.
type orderRecord struct {
	ID              string         `gorm:"primaryKey;column:id;size:64"`
	CustomerName    string         `gorm:"column:customer_name"`
	CustomerEmail   string         `gorm:"column:customer_email;index"`
	CustomerAddress string         `gorm:"column:customer_address"`
	Items           []lineItemRecord `gorm:"column:items;serializer:json;type:jsonb"`
	ProductIDs      pq.StringArray   `gorm:"column:product_ids;type:text[];index:idx_orders_product_ids,type:gin"`
	Subtotal        decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2)"`
	Tax             decimal.Decimal `gorm:"column:tax;type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`
	InvoiceNumber   string          `gorm:"column:invoice_number;size:32;index"`
	CreatedAt       time.Time       `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type lineItemRecord struct {
	ProductID string          `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
