package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string // 주문 상태 코드

const (
	OrderStatusProcessing OrderStatus = "processing" // 주문 처리 중
	OrderStatusShipped    OrderStatus = "shipped"    // 배송 중
	OrderStatusCompleted  OrderStatus = "completed"  // 배송 완료 (리뷰 작성 가능)
	OrderStatusCancelled  OrderStatus = "cancelled"  // 주문 취소
)

// Valid 유효한 주문 상태인지 확인
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                // 주문 ID
	OrderNumber       string         `gorm:"type:varchar(30);uniqueIndex" json:"order_number"`    // 주문 번호 (예: ORD-2023-001)
	UserID            uint           `gorm:"not null;index" json:"user_id"`                       // 주문자 ID
	Status            OrderStatus    `gorm:"type:varchar(20);default:'processing'" json:"status"` // 주문 상태
	TotalAmount       float64        `gorm:"not null" json:"total_amount"`                        // 총 결제 금액
	ShippingAddress   string         `gorm:"type:text" json:"shipping_address"`                   // 배송지 주소
	TrackingNumber    string         `gorm:"type:varchar(50)" json:"tracking_number,omitempty"`   // 운송장 번호
	EstimatedDelivery *time.Time     `json:"estimated_delivery,omitempty"`                        // 배송 예정일
	ShippedAt         *time.Time     `json:"shipped_at,omitempty"`                                // 발송 시각
	OrderDate         time.Time      `gorm:"not null;index" json:"order_date"`                    // 주문 일자
	CreatedAt         time.Time      `json:"created_at"`                                          // 생성 시각
	UpdatedAt         time.Time      `json:"updated_at"`                                          // 수정 시각
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                      // 삭제 시각(소프트 삭제)

	User  User        `gorm:"foreignKey:UserID" json:"user,omitempty"`                              // 주문자 정보
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // 주문 항목 목록
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`             // 주문 항목 ID
	OrderID      uint           `gorm:"not null;index" json:"order_id"`   // 주문 ID
	ProductID    uint           `gorm:"not null;index" json:"product_id"` // 상품 ID
	ProductName  string         `gorm:"not null" json:"product_name"`     // 상품명 스냅샷 (주문 시점)
	ProductImage string         `gorm:"type:text" json:"product_image"`   // 상품 이미지 스냅샷 (주문 시점)
	Price        float64        `gorm:"not null" json:"price"`            // 단가 스냅샷
	Quantity     int            `gorm:"not null" json:"quantity"`         // 수량
	CreatedAt    time.Time      `json:"created_at"`                       // 생성 시각
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                   // 삭제 시각(소프트 삭제)

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`                   // 주문 정보
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 상품 정보 (현재 카탈로그)
}

func (OrderItem) TableName() string {
	return "order_items"
}
