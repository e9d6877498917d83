package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                     // 상품 ID
	Name          string         `gorm:"not null;index" json:"name"`               // 상품명
	Description   string         `gorm:"type:text" json:"description"`             // 상품 설명
	Category      string         `gorm:"type:varchar(50);index" json:"category"`   // 카테고리 (chair, table, sofa 등)
	Price         float64        `gorm:"not null" json:"price"`                    // 판매가
	OriginalPrice *float64       `json:"original_price,omitempty"`                 // 할인 전 가격
	Image         string         `gorm:"type:text" json:"image"`                   // 대표 이미지 URL
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"` // 재고 수량
	IsActive      bool           `gorm:"default:true" json:"is_active"`            // 판매 중 여부
	RatingAverage float64        `gorm:"default:0" json:"rating_average"`          // 평균 평점 (리뷰 집계)
	ReviewCount   int            `gorm:"default:0" json:"review_count"`            // 승인된 리뷰 수
	CreatedAt     time.Time      `json:"created_at"`                               // 생성 시각
	UpdatedAt     time.Time      `json:"updated_at"`                               // 수정 시각
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                           // 삭제 시각(소프트 삭제)
}

func (Product) TableName() string {
	return "products"
}

// InStock 구매 가능 여부
func (p *Product) InStock() bool {
	return p.IsActive && p.StockQuantity > 0
}
