package models

import (
	"strings"
	"time"
)

// UserProfile 用户资料表（与用户一对一）
type UserProfile struct {
	ID                uint      `gorm:"primarykey" json:"id"`                          // 主键
	UserID            uint      `gorm:"uniqueIndex;not null" json:"user_id"`           // 用户ID
	FullName          string    `gorm:"type:varchar(100);not null" json:"full_name"`   // 姓名
	PhoneNumber       string    `gorm:"type:varchar(20)" json:"phone_number"`          // 手机号
	Address           string    `gorm:"type:varchar(500)" json:"address"`              // 收货地址
	ProfilePictureURL string    `gorm:"type:varchar(500)" json:"profile_picture_url"`  // 头像地址
	CreatedAt         time.Time `json:"created_at"`                                    // 创建时间
	UpdatedAt         time.Time `json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (UserProfile) TableName() string {
	return "user_profiles"
}

// ReadyForCheckout 手机号与地址均已填写
func (p *UserProfile) ReadyForCheckout() bool {
	if p == nil {
		return false
	}
	return strings.TrimSpace(p.PhoneNumber) != "" && strings.TrimSpace(p.Address) != ""
}
