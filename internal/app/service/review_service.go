package service

import (
	"errors"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound       = errors.New("review not found")
	ErrNotReviewOwner       = errors.New("review belongs to another user")
	ErrReviewProductMissing = errors.New("product selection is required")
	ErrInvalidRating        = errors.New("rating must be greater than 0 and at most 5")
	ErrProductNotReviewable = errors.New("product was not purchased or is already reviewed")
	ErrReviewAlreadyExists  = errors.New("review already exists for this product")
)

// ReviewableItem 리뷰 작성 가능한 구매 항목 (파생 데이터, 저장되지 않음)
// 주문과 리뷰 목록이 바뀔 때마다 다시 계산됨
type ReviewableItem struct {
	OrderItemID  uint      `json:"order_item_id"`
	OrderID      uint      `json:"order_id"`
	OrderNumber  string    `json:"order_number"`
	OrderDate    time.Time `json:"order_date"`
	ProductID    uint      `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
}

// CreateReviewInput 리뷰 생성 입력
type CreateReviewInput struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Rating    float64  `json:"rating" binding:"required"`
	Title     string   `json:"title"`
	Comment   string   `json:"comment"`
	ImageURLs []string `json:"image_urls"`
}

// UpdateReviewInput 리뷰 수정 입력 (평점/제목/내용만 교체 가능)
type UpdateReviewInput struct {
	Rating    float64  `json:"rating" binding:"required"`
	Title     string   `json:"title"`
	Comment   string   `json:"comment"`
	ImageURLs []string `json:"image_urls"`
}

type ReviewService interface {
	GetReviewableItems(userID uint) ([]ReviewableItem, error)
	GetUserReviews(userID uint, page, pageSize int) ([]model.ProductReview, int64, error)
	GetProductReviews(productID uint, page, pageSize int) ([]model.ProductReview, int64, error)
	CreateReview(userID uint, input CreateReviewInput) (*model.ProductReview, error)
	UpdateReview(reviewID, userID uint, input UpdateReviewInput) (*model.ProductReview, error)
	DeleteReview(reviewID, userID uint) error
	MarkHelpful(reviewID uint) (*model.ProductReview, error)
}

type reviewService struct {
	reviewRepo *repository.ReviewRepository
	orderRepo  repository.OrderRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository, orderRepo repository.OrderRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
	}
}

// ComputeReviewable projects the set of purchased-but-not-yet-reviewed items
// from the given orders and the user's existing reviews. The projection
// preserves traversal order (orders first, items within each order in stored
// order) and does not deduplicate repeat purchases: a product bought twice
// appears twice until any review for it exists, then both occurrences drop
// out (reviews are per product, not per line item). Pure function; callers
// decide which orders qualify.
func ComputeReviewable(orders []model.Order, reviews []model.ProductReview) []ReviewableItem {
	reviewed := make(map[uint]struct{}, len(reviews))
	for _, review := range reviews {
		reviewed[review.ProductID] = struct{}{}
	}

	items := make([]ReviewableItem, 0)
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := reviewed[item.ProductID]; ok {
				continue
			}
			items = append(items, ReviewableItem{
				OrderItemID:  item.ID,
				OrderID:      order.ID,
				OrderNumber:  order.OrderNumber,
				OrderDate:    order.OrderDate,
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
			})
		}
	}
	return items
}

// GetReviewableItems returns the user's current reviewable items. Only
// completed orders count toward eligibility.
func (s *reviewService) GetReviewableItems(userID uint) ([]ReviewableItem, error) {
	orders, err := s.orderRepo.FindCompletedByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch completed orders for reviewable items", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	reviews, err := s.reviewRepo.GetAllByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user reviews for reviewable items", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	items := ComputeReviewable(orders, reviews)

	logger.Debug("Computed reviewable items", map[string]interface{}{
		"user_id":      userID,
		"order_count":  len(orders),
		"review_count": len(reviews),
		"item_count":   len(items),
	})
	return items, nil
}

func (s *reviewService) GetUserReviews(userID uint, page, pageSize int) ([]model.ProductReview, int64, error) {
	offset := (page - 1) * pageSize
	return s.reviewRepo.GetReviewsByUserID(userID, offset, pageSize)
}

func (s *reviewService) GetProductReviews(productID uint, page, pageSize int) ([]model.ProductReview, int64, error) {
	offset := (page - 1) * pageSize
	return s.reviewRepo.GetReviewsByProductID(productID, offset, pageSize)
}

// CreateReview creates a review for a purchased product. The product must be
// in the caller's reviewable set; metadata snapshots are copied from the
// matched order item. The review is created verified (purchase proven by the
// eligibility check) and approved (no moderation queue).
func (s *reviewService) CreateReview(userID uint, input CreateReviewInput) (*model.ProductReview, error) {
	logger.Info("Creating review", map[string]interface{}{
		"user_id":    userID,
		"product_id": input.ProductID,
		"rating":     input.Rating,
	})

	if input.ProductID == 0 {
		return nil, ErrReviewProductMissing
	}
	if input.Rating <= 0 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	reviewable, err := s.GetReviewableItems(userID)
	if err != nil {
		return nil, err
	}

	var matched *ReviewableItem
	for i := range reviewable {
		if reviewable[i].ProductID == input.ProductID {
			matched = &reviewable[i]
			break
		}
	}
	if matched == nil {
		logger.Warn("Review rejected: product not reviewable", map[string]interface{}{
			"user_id":    userID,
			"product_id": input.ProductID,
		})
		return nil, ErrProductNotReviewable
	}

	// Duplicate check. The unique (user_id, product_id) index backs this up
	// against concurrent submissions.
	existing, err := s.reviewRepo.FindByUserAndProduct(userID, input.ProductID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to check existing review", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": input.ProductID,
		})
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewAlreadyExists
	}

	review := &model.ProductReview{
		UserID:       userID,
		ProductID:    input.ProductID,
		OrderItemID:  &matched.OrderItemID,
		ProductName:  matched.ProductName,
		ProductImage: matched.ProductImage,
		Rating:       input.Rating,
		Title:        input.Title,
		Comment:      input.Comment,
		ImageURLs:    input.ImageURLs,
		IsVerified:   true,
		IsApproved:   true,
		HelpfulCount: 0,
	}

	if err := s.reviewRepo.CreateReview(review); err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": input.ProductID,
		})
		return nil, err
	}

	if err := s.reviewRepo.RecalculateProductRating(input.ProductID); err != nil {
		logger.Warn("Failed to recalculate product rating after create", map[string]interface{}{
			"product_id": input.ProductID,
			"error":      err.Error(),
		})
	}

	logger.Info("Review created successfully", map[string]interface{}{
		"review_id":  review.ID,
		"user_id":    userID,
		"product_id": input.ProductID,
	})
	return review, nil
}

// UpdateReview replaces rating, title, comment and images of the caller's
// review. Identity, timestamps of creation, verification flags and the
// helpful count carry over unchanged.
func (s *reviewService) UpdateReview(reviewID, userID uint, input UpdateReviewInput) (*model.ProductReview, error) {
	logger.Info("Updating review", map[string]interface{}{
		"review_id": reviewID,
		"user_id":   userID,
	})

	if input.Rating <= 0 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		logger.Error("Failed to fetch review for update", err, map[string]interface{}{
			"review_id": reviewID,
		})
		return nil, err
	}

	if review.UserID != userID {
		logger.Warn("Unauthorized review update attempt", map[string]interface{}{
			"review_id": reviewID,
			"user_id":   userID,
			"owner_id":  review.UserID,
		})
		return nil, ErrNotReviewOwner
	}

	review.Rating = input.Rating
	review.Title = input.Title
	review.Comment = input.Comment
	if input.ImageURLs != nil {
		review.ImageURLs = input.ImageURLs
	}

	if err := s.reviewRepo.UpdateReview(review); err != nil {
		logger.Error("Failed to update review", err, map[string]interface{}{
			"review_id": reviewID,
		})
		return nil, err
	}

	if err := s.reviewRepo.RecalculateProductRating(review.ProductID); err != nil {
		logger.Warn("Failed to recalculate product rating after update", map[string]interface{}{
			"product_id": review.ProductID,
			"error":      err.Error(),
		})
	}

	return review, nil
}

// DeleteReview removes the caller's review. Deleting a review that does not
// exist is a no-op, not an error. Deletion is irrevocable and frees the
// (user, product) slot for a new review.
func (s *reviewService) DeleteReview(reviewID, userID uint) error {
	logger.Info("Deleting review", map[string]interface{}{
		"review_id": reviewID,
		"user_id":   userID,
	})

	review, err := s.reviewRepo.GetReviewByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// idempotent delete
			return nil
		}
		logger.Error("Failed to fetch review for deletion", err, map[string]interface{}{
			"review_id": reviewID,
		})
		return err
	}

	if review.UserID != userID {
		logger.Warn("Unauthorized review delete attempt", map[string]interface{}{
			"review_id": reviewID,
			"user_id":   userID,
			"owner_id":  review.UserID,
		})
		return ErrNotReviewOwner
	}

	if err := s.reviewRepo.DeleteReview(reviewID); err != nil {
		logger.Error("Failed to delete review", err, map[string]interface{}{
			"review_id": reviewID,
		})
		return err
	}

	if err := s.reviewRepo.RecalculateProductRating(review.ProductID); err != nil {
		logger.Warn("Failed to recalculate product rating after delete", map[string]interface{}{
			"product_id": review.ProductID,
			"error":      err.Error(),
		})
	}

	return nil
}

// MarkHelpful increments the review's helpful count by one and returns the
// updated review. Votes are accepted from any viewer; repeat votes repeat
// the increment. The update is a single SQL expression, so concurrent votes
// cannot lose counts.
func (s *reviewService) MarkHelpful(reviewID uint) (*model.ProductReview, error) {
	review, err := s.reviewRepo.IncrementHelpful(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		logger.Error("Failed to increment helpful count", err, map[string]interface{}{
			"review_id": reviewID,
		})
		return nil, err
	}

	logger.Debug("Review marked helpful", map[string]interface{}{
		"review_id":     reviewID,
		"helpful_count": review.HelpfulCount,
	})
	return review, nil
}
