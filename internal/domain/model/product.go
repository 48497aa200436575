package model

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;type:varchar(200)" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Stock       int             `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Category    string          `gorm:"not null;type:varchar(50);index" json:"category"`
	ImageURL    string          `gorm:"type:varchar(500)" json:"image_url"`
	OrderItems  []OrderItem     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"` // 一對多，級聯刪除
	BaseModel
}
