package model

// CartItem 每個 (user, product) 只會有一列，重複加入只更新數量
type CartItem struct {
	CartItemID uint    `gorm:"primaryKey" json:"id"`
	UserID     uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID  uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity   int     `gorm:"not null;check:quantity >= 1" json:"quantity"`
	Product    Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	BaseModel
}
