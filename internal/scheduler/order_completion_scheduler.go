package scheduler

import (
	"github.com/furnimart/furnimart-backend/internal/app/service"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// OrderCompletionScheduler 배송 완료 자동 처리 스케줄러
// shipped 상태로 일정 기간 지난 주문을 completed로 전환한다.
// 주문이 completed가 되어야 리뷰 작성이 가능해진다.
type OrderCompletionScheduler struct {
	cron         *cron.Cron
	orderService service.OrderService
}

// NewOrderCompletionScheduler 주문 완료 스케줄러 생성
func NewOrderCompletionScheduler(orderService service.OrderService) *OrderCompletionScheduler {
	return &OrderCompletionScheduler{
		cron:         cron.New(),
		orderService: orderService,
	}
}

// Start 스케줄러 시작
func (s *OrderCompletionScheduler) Start() error {
	// 매시 정각에 배송 완료 처리
	// cron 표현식: "0 * * * *" = 매시 0분
	_, err := s.cron.AddFunc("0 * * * *", func() {
		logger.Info("Starting scheduled order completion", nil)

		count, err := s.orderService.CompleteShippedOrders()
		if err != nil {
			logger.Error("Failed to complete shipped orders from scheduler", err)
			return
		}

		logger.Info("Scheduled order completion finished", map[string]interface{}{
			"completed": count,
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for order completion", err)
		return err
	}

	s.cron.Start()
	logger.Info("Order completion scheduler started successfully (hourly)", nil)

	return nil
}

// Stop 스케줄러 중지
func (s *OrderCompletionScheduler) Stop() {
	logger.Info("Stopping order completion scheduler...", nil)
	s.cron.Stop()
	logger.Info("Order completion scheduler stopped", nil)
}
