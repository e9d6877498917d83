package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/furnimart/furnimart-backend/config"
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// 상품 카탈로그 XLSX 임포트 도구
// 컬럼 순서: 상품명, 설명, 카테고리, 가격, 정가, 이미지 URL, 재고
func main() {
	// 명령줄 인자 확인
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	// 설정 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// DB 연결
	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Repository 생성
	productRepo := repository.NewProductRepository(db.GetDB())

	// XLSX 파일 읽기
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	// 사용자 확인
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	// 배치로 저장
	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	for start := 0; start < len(products); start += batchSize {
		end := start + batchSize
		if end > len(products) {
			end = len(products)
		}
		if err := productRepo.CreateBatch(products[start:end]); err != nil {
			log.Fatal("Failed to bulk create products:", err)
		}
		fmt.Printf("Imported %d/%d\n", end, len(products))
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	// 첫 번째 시트 이름 가져오기
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seenProducts := make(map[string]bool) // 중복 제거용
	skippedCount := 0

	// 첫 행은 헤더이므로 스킵
	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		if len(row) < 7 {
			skippedCount++
			continue
		}

		name := strings.TrimSpace(row[0])        // 상품명
		description := strings.TrimSpace(row[1]) // 설명
		category := strings.TrimSpace(row[2])    // 카테고리
		priceStr := strings.TrimSpace(row[3])    // 가격
		originalStr := strings.TrimSpace(row[4]) // 정가 (할인 전, 선택)
		image := strings.TrimSpace(row[5])       // 이미지 URL
		stockStr := strings.TrimSpace(row[6])    // 재고

		// 필수 항목 검사
		if name == "" || category == "" || priceStr == "" {
			skippedCount++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			skippedCount++
			continue
		}

		var originalPrice *float64
		if originalStr != "" {
			if op, err := strconv.ParseFloat(originalStr, 64); err == nil && op > price {
				originalPrice = &op
			}
		}

		stock := 0
		if stockStr != "" {
			if s, err := strconv.Atoi(stockStr); err == nil && s >= 0 {
				stock = s
			}
		}

		// 중복 체크 (이름+카테고리 기준)
		key := fmt.Sprintf("%s|%s", name, category)
		if seenProducts[key] {
			skippedCount++
			continue
		}
		seenProducts[key] = true

		products = append(products, model.Product{
			Name:          name,
			Description:   description,
			Category:      category,
			Price:         price,
			OriginalPrice: originalPrice,
			Image:         image,
			StockQuantity: stock,
			IsActive:      true,
		})
	}

	fmt.Printf("Skipped rows: %d\n", skippedCount)
	return products, nil
}
