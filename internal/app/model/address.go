package model

import (
	"time"

	"gorm.io/gorm"
)

type AddressType string // 배송지 유형

const (
	AddressTypeShipping AddressType = "shipping" // 배송지
	AddressTypeBilling  AddressType = "billing"  // 청구지
)

type Address struct {
	ID         uint           `gorm:"primaryKey" json:"id"`                               // 배송지 ID
	UserID     uint           `gorm:"not null;index" json:"user_id"`                      // 사용자 ID
	Type       AddressType    `gorm:"type:varchar(20);default:'shipping'" json:"type"`    // 유형
	FirstName  string         `gorm:"size:100;not null" json:"first_name"`                // 수령인 이름
	LastName   string         `gorm:"size:100;not null" json:"last_name"`                 // 수령인 성
	Company    string         `gorm:"size:200" json:"company,omitempty"`                  // 회사명 (선택)
	Address1   string         `gorm:"type:text;not null" json:"address1"`                 // 주소
	Address2   string         `gorm:"type:text" json:"address2,omitempty"`                // 상세주소 (선택)
	City       string         `gorm:"size:100;not null" json:"city"`                      // 도시
	State      string         `gorm:"size:100" json:"state"`                              // 주/도
	PostalCode string         `gorm:"size:20;not null" json:"postal_code"`                // 우편번호
	Country    string         `gorm:"size:100;not null" json:"country"`                   // 국가
	Phone      string         `gorm:"size:30" json:"phone,omitempty"`                     // 전화번호 (선택)
	IsDefault  bool           `gorm:"default:false" json:"is_default"`                    // 기본 배송지 여부
	CreatedAt  time.Time      `json:"created_at"`                                         // 생성 시각
	UpdatedAt  time.Time      `json:"updated_at"`                                         // 수정 시각
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                     // 삭제 시각(소프트 삭제)
}

func (Address) TableName() string {
	return "addresses"
}
