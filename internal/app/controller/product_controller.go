package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// GetProducts 상품 목록 조회
// @Summary 상품 목록 (카테고리 필터, 페이지네이션)
// @Tags Products
// @Produce json
// @Param page query int false "페이지" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Param category query string false "카테고리"
// @Success 200 {object} object
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, pageSize := paginationParams(c)
	category := c.Query("category")

	products, total, err := ctrl.productService.GetProducts(page, pageSize, category)
	if err != nil {
		apperrors.InternalError(c, "상품 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      products,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProduct 상품 상세 조회
// @Summary 상품 상세
// @Tags Products
// @Produce json
// @Param id path int true "상품 ID"
// @Success 200 {object} model.Product
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 상품 ID입니다")
		return
	}

	product, err := ctrl.productService.GetProductByID(uint(productID))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "상품을 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "상품 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, product)
}
