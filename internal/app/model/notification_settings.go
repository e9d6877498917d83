package model

import (
	"time"
)

// NotificationSettings 사용자별 알림 설정
// 사용자가 설정 페이지를 처음 열 때 기본값으로 생성됨
type NotificationSettings struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint  `gorm:"not null;uniqueIndex" json:"user_id"` // 사용자 ID
	User   *User `gorm:"foreignKey:UserID" json:"-"`          // 사용자 정보

	OrderUpdates    bool `gorm:"default:true" json:"order_updates"`     // 주문/배송 상태 알림
	Promotions      bool `gorm:"default:false" json:"promotions"`       // 프로모션/할인 알림
	Newsletter      bool `gorm:"default:false" json:"newsletter"`       // 뉴스레터 수신
	ReviewReminders bool `gorm:"default:true" json:"review_reminders"`  // 리뷰 작성 독려 알림
}

func (NotificationSettings) TableName() string {
	return "notification_settings"
}
