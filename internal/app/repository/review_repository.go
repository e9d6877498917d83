package repository

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// CreateReview 리뷰 생성
func (r *ReviewRepository) CreateReview(review *model.ProductReview) error {
	return r.db.Create(review).Error
}

// GetReviewByID ID로 리뷰 조회
func (r *ReviewRepository) GetReviewByID(id uint) (*model.ProductReview, error) {
	var review model.ProductReview
	err := r.db.First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetReviewsByUserID 사용자별 리뷰 목록 조회 (최신순)
func (r *ReviewRepository) GetReviewsByUserID(userID uint, offset, limit int) ([]model.ProductReview, int64, error) {
	var reviews []model.ProductReview
	var total int64

	query := r.db.Model(&model.ProductReview{}).Where("user_id = ?", userID)

	// 전체 개수
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 데이터 조회
	err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// GetReviewsByProductID 상품별 리뷰 목록 조회 (승인된 리뷰만, 최신순)
func (r *ReviewRepository) GetReviewsByProductID(productID uint, offset, limit int) ([]model.ProductReview, int64, error) {
	var reviews []model.ProductReview
	var total int64

	query := r.db.Model(&model.ProductReview{}).
		Where("product_id = ? AND is_approved = ?", productID, true)

	// 전체 개수
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 데이터 조회
	err := query.Preload("User").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error

	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// FindByUserAndProduct 사용자-상품 조합으로 리뷰 조회 (중복 작성 확인용)
func (r *ReviewRepository) FindByUserAndProduct(userID, productID uint) (*model.ProductReview, error) {
	var review model.ProductReview
	err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetAllByUserID 사용자의 전체 리뷰 조회 (리뷰 가능 상품 계산용, 페이지네이션 없음)
func (r *ReviewRepository) GetAllByUserID(userID uint) ([]model.ProductReview, error) {
	var reviews []model.ProductReview
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// UpdateReview 리뷰 수정
func (r *ReviewRepository) UpdateReview(review *model.ProductReview) error {
	return r.db.Save(review).Error
}

// DeleteReview 리뷰 삭제 (하드 삭제 - 삭제 후 재작성 허용)
func (r *ReviewRepository) DeleteReview(id uint) error {
	return r.db.Delete(&model.ProductReview{}, id).Error
}

// IncrementHelpful 도움됨 수 1 증가 (단일 UPDATE로 원자적 처리)
func (r *ReviewRepository) IncrementHelpful(id uint) (*model.ProductReview, error) {
	result := r.db.Model(&model.ProductReview{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetReviewByID(id)
}

// RecalculateProductRating 상품의 평균 평점/리뷰 수 재계산
// 리뷰 생성/수정/삭제 후 호출됨
func (r *ReviewRepository) RecalculateProductRating(productID uint) error {
	var count int64
	if err := r.db.Model(&model.ProductReview{}).
		Where("product_id = ? AND is_approved = ?", productID, true).
		Count(&count).Error; err != nil {
		return err
	}

	var avg float64
	if count > 0 {
		if err := r.db.Model(&model.ProductReview{}).
			Where("product_id = ? AND is_approved = ?", productID, true).
			Select("AVG(rating)").
			Scan(&avg).Error; err != nil {
			return err
		}
	}

	return r.db.Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"rating_average": avg,
			"review_count":   count,
		}).Error
}
