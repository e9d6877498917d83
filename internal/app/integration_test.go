package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/furnimart/furnimart-backend/config"
	"github.com/furnimart/furnimart-backend/internal/app/controller"
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	// Repositories
	userRepo := repository.NewUserRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	reviewRepo := repository.NewReviewRepository(testDB)
	wishlistRepo := repository.NewWishlistRepository(testDB)

	// Services
	jwtCfg := &config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
	authService := service.NewAuthService(userRepo, jwtCfg)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo)
	reviewService := service.NewReviewService(reviewRepo, orderRepo)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo)

	// Controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	orderController := controller.NewOrderController(orderService)
	reviewController := controller.NewReviewController(reviewService)
	wishlistController := controller.NewWishlistController(wishlistService)

	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()

	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	users := router.Group("/api/v1/users/me")
	users.Use(authMiddleware.Authenticate())
	{
		users.GET("", authController.GetProfile)
	}

	products := router.Group("/api/v1/products")
	{
		products.GET("", productController.GetProducts)
		products.GET("/:id/reviews", reviewController.GetProductReviews)
	}

	orders := router.Group("/api/v1/orders")
	orders.Use(authMiddleware.Authenticate())
	{
		orders.GET("", orderController.GetMyOrders)
		orders.GET("/:id", orderController.GetOrder)
	}

	reviews := router.Group("/api/v1/reviews")
	{
		reviews.POST("/:id/helpful", reviewController.MarkHelpful)

		authed := reviews.Group("")
		authed.Use(authMiddleware.Authenticate())
		{
			authed.GET("/reviewable", reviewController.GetReviewableItems)
			authed.GET("/me", reviewController.GetMyReviews)
			authed.POST("", reviewController.CreateReview)
			authed.PUT("/:id", reviewController.UpdateReview)
			authed.DELETE("/:id", reviewController.DeleteReview)
		}
	}

	wishlist := router.Group("/api/v1/wishlist")
	wishlist.Use(authMiddleware.Authenticate())
	{
		wishlist.GET("", wishlistController.GetWishlist)
		wishlist.POST("", wishlistController.AddToWishlist)
	}

	return &TestServer{
		Router: router,
		DB:     testDB,
	}
}

func (ts *TestServer) request(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func (ts *TestServer) registerUser(t *testing.T, email string) string {
	w := ts.request(t, "POST", "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
		"name":     "Test Buyer",
		"phone":    "010-1234-5678",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["access_token"].(string)
}

func (ts *TestServer) seedCompletedOrder(t *testing.T, email string, products ...*model.Product) *model.Order {
	var user model.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)

	order := &model.Order{
		OrderNumber:     fmt.Sprintf("ORD-%d", time.Now().UnixNano()),
		UserID:          user.ID,
		Status:          model.OrderStatusCompleted,
		ShippingAddress: "서울특별시 강남구 테스트로 1",
		OrderDate:       time.Now().Add(-96 * time.Hour),
	}
	for _, p := range products {
		order.Items = append(order.Items, model.OrderItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			ProductImage: p.Image,
			Price:        p.Price,
			Quantity:     1,
		})
		order.TotalAmount += p.Price
	}
	require.NoError(t, ts.DB.Create(order).Error)
	return order
}

func TestReviewLifecycleJourney(t *testing.T) {
	ts := setupIntegrationTest(t)

	// 1. Register and seed a completed purchase
	t.Log("Step 1: Register user and seed completed order")
	token := ts.registerUser(t, "buyer@example.com")

	chair := &model.Product{Name: "Oak Chair", Category: "chairs", Price: 129000, Image: "https://cdn.example.com/oak.jpg", StockQuantity: 5, IsActive: true}
	desk := &model.Product{Name: "Walnut Desk", Category: "desks", Price: 390000, Image: "https://cdn.example.com/walnut.jpg", StockQuantity: 3, IsActive: true}
	require.NoError(t, ts.DB.Create(chair).Error)
	require.NoError(t, ts.DB.Create(desk).Error)
	ts.seedCompletedOrder(t, "buyer@example.com", chair, desk)

	// 2. Both purchases are reviewable
	t.Log("Step 2: Check reviewable items")
	w := ts.request(t, "GET", "/api/v1/reviews/reviewable", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reviewableResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &reviewableResp)
	items := reviewableResp["data"].([]interface{})
	require.Len(t, items, 2)

	// 3. Submit a review for the chair
	t.Log("Step 3: Create review")
	w = ts.request(t, "POST", "/api/v1/reviews", token, map[string]interface{}{
		"product_id": chair.ID,
		"rating":     4.5,
		"title":      "튼튼하고 좋아요",
		"comment":    "조립이 간단합니다",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reviewResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &reviewResp)
	reviewID := uint(reviewResp["id"].(float64))
	assert.Equal(t, true, reviewResp["is_verified"])
	assert.Equal(t, true, reviewResp["is_approved"])
	assert.Equal(t, "Oak Chair", reviewResp["product_name"])

	// 4. Chair is no longer reviewable, desk still is
	t.Log("Step 4: Reviewable set shrinks")
	w = ts.request(t, "GET", "/api/v1/reviews/reviewable", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &reviewableResp)
	items = reviewableResp["data"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(desk.ID), first["product_id"])

	// 5. Duplicate review is rejected
	t.Log("Step 5: Duplicate rejected")
	w = ts.request(t, "POST", "/api/v1/reviews", token, map[string]interface{}{
		"product_id": chair.ID,
		"rating":     2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 6. Anonymous helpful votes accumulate
	t.Log("Step 6: Mark helpful twice")
	for i := 1; i <= 2; i++ {
		w = ts.request(t, "POST", fmt.Sprintf("/api/v1/reviews/%d/helpful", reviewID), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		json.Unmarshal(w.Body.Bytes(), &reviewResp)
		assert.Equal(t, float64(i), reviewResp["helpful_count"])
	}

	// 7. Update keeps the helpful count
	t.Log("Step 7: Update review")
	w = ts.request(t, "PUT", fmt.Sprintf("/api/v1/reviews/%d", reviewID), token, map[string]interface{}{
		"rating":  3,
		"title":   "수정된 제목",
		"comment": "수정된 내용",
	})
	require.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &reviewResp)
	assert.Equal(t, float64(3), reviewResp["rating"])
	assert.Equal(t, float64(2), reviewResp["helpful_count"])

	// 8. Product review listing shows the approved review
	t.Log("Step 8: Product reviews")
	w = ts.request(t, "GET", fmt.Sprintf("/api/v1/products/%d/reviews", chair.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.Equal(t, float64(1), listResp["total"])

	// 9. Delete restores eligibility
	t.Log("Step 9: Delete review")
	w = ts.request(t, "DELETE", fmt.Sprintf("/api/v1/reviews/%d", reviewID), token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.request(t, "GET", "/api/v1/reviews/reviewable", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &reviewableResp)
	items = reviewableResp["data"].([]interface{})
	assert.Len(t, items, 2)
}

func TestAuthenticationFlow(t *testing.T) {
	ts := setupIntegrationTest(t)

	token := ts.registerUser(t, "test@example.com")

	// Login
	w := ts.request(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong password
	w = ts.request(t, "POST", "/api/v1/auth/login", "", map[string]string{
		"email":    "test@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Profile
	w = ts.request(t, "GET", "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var profile map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &profile)
	assert.Equal(t, "test@example.com", profile["email"])
	// Password hash never serialized
	_, exposed := profile["password_hash"]
	assert.False(t, exposed)
}

func TestUnauthorizedAccess(t *testing.T) {
	ts := setupIntegrationTest(t)

	protectedRoutes := []string{
		"/api/v1/users/me",
		"/api/v1/orders",
		"/api/v1/reviews/reviewable",
		"/api/v1/reviews/me",
		"/api/v1/wishlist",
	}

	for _, route := range protectedRoutes {
		t.Run(route, func(t *testing.T) {
			req := httptest.NewRequest("GET", route, nil)
			w := httptest.NewRecorder()

			ts.Router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
