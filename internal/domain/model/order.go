package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // 待處理
	OrderStatusProcessing OrderStatus = "processing" // 處理中
	OrderStatusShipped    OrderStatus = "shipped"    // 已出貨
	OrderStatusDelivered  OrderStatus = "delivered"  // 已送達
	OrderStatusCancelled  OrderStatus = "cancelled"  // 已取消
)

// 只驗證值域，不限制狀態轉移順序
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order 除了 Status 之外建立後不再變動
type Order struct {
	OrderID         uint            `gorm:"primaryKey" json:"id"`
	UserID          *uint           `gorm:"index" json:"user_id"` // 外鍵，關聯到 User，訪客下單為 null
	CustomerName    string          `gorm:"not null;type:varchar(100)" json:"customer_name"`
	Email           string          `gorm:"not null;type:varchar(100)" json:"email"`
	Phone           string          `gorm:"type:varchar(20)" json:"phone"`
	ShippingAddress string          `gorm:"not null;type:text" json:"shipping_address"`
	City            string          `gorm:"type:varchar(50)" json:"city"`
	State           string          `gorm:"type:varchar(50)" json:"state"`
	PostalCode      string          `gorm:"type:varchar(10)" json:"postal_code"`
	Country         string          `gorm:"type:varchar(50)" json:"country"`
	PaymentMethod   string          `gorm:"type:varchar(50)" json:"payment_method"`
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	Status          OrderStatus     `gorm:"not null;type:varchar(20);default:pending;index" json:"status"`
	OrderDate       time.Time       `gorm:"not null;index" json:"order_date"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"` // 一對多，級聯刪除
	User            *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	BaseModel
}

// OrderItem 下單當下的價格快照，建立後不再變動
type OrderItem struct {
	OrderID   uint            `gorm:"primaryKey" json:"order_id"`   // 外鍵，關聯到 Order
	ProductID uint            `gorm:"primaryKey" json:"product_id"` // 外鍵，關聯到 Product
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	BaseModel
}
