package model

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	UserID   uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null;type:varchar(100)" json:"name"`
	Email    string `gorm:"unique;not null;type:varchar(100)" json:"email"`
	Password string `gorm:"not null;type:varchar(255)" json:"-"`
	Role     string `gorm:"not null;type:varchar(20);default:customer" json:"role"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	City     string `gorm:"type:varchar(50)" json:"city"`
	Country  string `gorm:"type:varchar(50)" json:"country"`
	Orders   []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"` // 一對多，級聯刪除
	BaseModel
}

// Actor 已驗證的請求者身份，由session或bearer token解析而來
type Actor struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// 管理權限統一由此判斷，不要散落role字串比對
func (a *Actor) HasAdminPrivilege() bool {
	return a != nil && a.Role == RoleAdmin
}
