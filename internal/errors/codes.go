package errors

// 에러 코드 상수 정의
// 형식: CATEGORY_SPECIFIC_DETAIL
// 프론트엔드에서 이 코드를 기반으로 메시지를 매핑함

const (
	// ==================== 인증 (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // 로그인 필요
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // 잘못된 이메일/비밀번호
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"       // 토큰 만료
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"       // 잘못된 토큰
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"       // 토큰 폐기됨
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"        // 이메일 중복
	AuthPasswordMismatch   = "AUTH_PASSWORD_MISMATCH"   // 현재 비밀번호 불일치

	// ==================== 인가/권한 (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"      // 접근 권한 없음
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND" // 권한 정보 없음
	AuthzOwnerOnly    = "AUTHZ_OWNER_ONLY"     // 소유자만 가능

	// ==================== 검증 (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // 잘못된 입력
	ValidationInvalidID     = "VALIDATION_INVALID_ID"     // 잘못된 ID
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // 잘못된 형식
	ValidationInvalidRange  = "VALIDATION_INVALID_RANGE"  // 범위 초과
	ValidationRequired      = "VALIDATION_REQUIRED"       // 필수 항목

	// ==================== 리소스 (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // 리소스 없음
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // 이미 존재
	ResourceConflict      = "RESOURCE_CONFLICT"       // 충돌

	// ==================== 상품 (PRODUCT_) ====================
	ProductNotFound   = "PRODUCT_NOT_FOUND"    // 상품 없음
	ProductOutOfStock = "PRODUCT_OUT_OF_STOCK" // 재고 없음

	// ==================== 주문 (ORDER_) ====================
	OrderNotFound      = "ORDER_NOT_FOUND"       // 주문 없음
	OrderInvalidStatus = "ORDER_INVALID_STATUS"  // 잘못된 주문 상태
	OrderNotOwned      = "ORDER_NOT_OWNED"       // 본인 주문 아님

	// ==================== 리뷰 (REVIEW_) ====================
	ReviewNotFound       = "REVIEW_NOT_FOUND"        // 리뷰 없음
	ReviewInvalidRating  = "REVIEW_INVALID_RATING"   // 잘못된 평점
	ReviewAlreadyExists  = "REVIEW_ALREADY_EXISTS"   // 이미 리뷰 작성함
	ReviewNotReviewable  = "REVIEW_NOT_REVIEWABLE"   // 구매하지 않은 상품
	ReviewProductMissing = "REVIEW_PRODUCT_REQUIRED" // 상품 미선택

	// ==================== 배송지 (ADDRESS_) ====================
	AddressNotFound = "ADDRESS_NOT_FOUND" // 배송지 없음

	// ==================== 찜 (WISHLIST_) ====================
	WishlistItemExists   = "WISHLIST_ITEM_EXISTS"    // 이미 찜한 상품
	WishlistItemNotFound = "WISHLIST_ITEM_NOT_FOUND" // 찜 항목 없음

	// ==================== 업로드 (UPLOAD_) ====================
	UploadInvalidType   = "UPLOAD_INVALID_FILE_TYPE" // 잘못된 파일 형식
	UploadInvalidFolder = "UPLOAD_INVALID_FOLDER"    // 허용되지 않는 폴더
	UploadFailed        = "UPLOAD_FAILED"            // 업로드 실패

	// ==================== 내부 오류 (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // 서버 오류
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // DB 오류
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"   // 외부 API 오류
)
