package models

import "time"

// Contact 联系表单留言
type Contact struct {
	ID        uint      `gorm:"primarykey" json:"id"`                          // 主键
	FullName  string    `gorm:"type:varchar(100);not null" json:"full_name"`   // 姓名
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"` // 邮箱
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`     // 主题
	Message   string    `gorm:"type:text;not null" json:"message"`             // 内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`                       // 创建时间
}

// TableName 指定表名
func (Contact) TableName() string {
	return "contacts"
}
