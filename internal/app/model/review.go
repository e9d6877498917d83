package model

import (
	"time"

	"github.com/lib/pq"
)

// ProductReview 상품 리뷰 모델
// 사용자당 상품 하나에 리뷰 하나만 허용 (복합 유니크 인덱스)
// 삭제는 하드 삭제: 삭제 후 같은 상품에 재작성 가능해야 함
type ProductReview struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 작성자/대상
	UserID    uint    `gorm:"not null;uniqueIndex:idx_reviews_user_product" json:"user_id"` // 작성자 ID
	User      User    `gorm:"foreignKey:UserID" json:"user,omitempty"`                      // 작성자 정보
	ProductID uint    `gorm:"not null;uniqueIndex:idx_reviews_user_product" json:"product_id"` // 상품 ID
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`                                // 상품 정보

	// 구매 이력 연결 (어느 주문 항목에서 작성되었는지)
	OrderItemID *uint `gorm:"index" json:"order_item_id,omitempty"` // 주문 항목 ID

	// 상품 메타데이터 스냅샷 (리뷰 목록 표시용, 주문 항목에서 복사)
	ProductName  string `gorm:"not null" json:"product_name"`   // 상품명 스냅샷
	ProductImage string `gorm:"type:text" json:"product_image"` // 상품 이미지 스냅샷

	// 리뷰 내용
	Rating  float64 `gorm:"not null;check:rating > 0 AND rating <= 5" json:"rating"` // 평점 (0.5 단위 허용)
	Title   string  `gorm:"type:varchar(200)" json:"title"`                          // 제목 (선택)
	Comment string  `gorm:"type:text" json:"comment"`                                // 내용 (선택)

	// 리뷰 이미지
	ImageURLs pq.StringArray `gorm:"type:text[]" json:"image_urls,omitempty"` // 리뷰 이미지 URL 배열

	// 상태
	IsVerified bool `gorm:"default:false" json:"is_verified"` // 구매 인증 여부
	IsApproved bool `gorm:"default:false" json:"is_approved"` // 노출 승인 여부

	// 통계
	HelpfulCount int `gorm:"default:0;check:helpful_count >= 0" json:"helpful_count"` // 도움됨 수
}

func (ProductReview) TableName() string {
	return "product_reviews"
}
