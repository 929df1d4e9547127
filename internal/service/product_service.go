package service

import (
	"fmt"
	"strings"

	"github.com/denim-next/internal/models"
	"github.com/denim-next/internal/repository"
)

// ProductInput 商品创建/更新输入
type ProductInput struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
}

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List 商品目录（服务端顺序）
func (s *ProductService) List() ([]models.Product, error) {
	return s.productRepo.List()
}

// Get 按 ID 获取商品
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create 创建商品（后台）
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	normalized, err := normalizeProductInput(input)
	if err != nil {
		return nil, err
	}

	count, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:        normalized.Name,
		Price:       normalized.Price,
		Description: normalized.Description,
		Image:       normalized.Image,
		Featured:    normalized.Featured,
		SortOrder:   int(count) + 1, // 新商品排在目录末尾
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品（后台）
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	normalized, err := normalizeProductInput(input)
	if err != nil {
		return nil, err
	}
	product.Name = normalized.Name
	product.Price = normalized.Price
	product.Description = normalized.Description
	product.Image = normalized.Image
	product.Featured = normalized.Featured

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品（后台）
func (s *ProductService) Delete(id uint) error {
	if err := s.productRepo.Delete(id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// normalizeProductInput 校验并归一化商品输入
//
// 价格允许 "79.99" 或 "$79.99" 等写法，统一存为 $D.DD 展示格式；
// 无法解析或非正数的价格拒绝入库。
func normalizeProductInput(input ProductInput) (ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	rawPrice := strings.TrimSpace(input.Price)
	if rawPrice == "" {
		return input, fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	parsed := models.ParsePrice(rawPrice)
	if !parsed.IsPositive() {
		return input, fmt.Errorf("%w: price %q is not a positive amount", ErrInvalidInput, rawPrice)
	}
	input.Price = models.FormatPrice(parsed)
	input.Description = strings.TrimSpace(input.Description)
	input.Image = strings.TrimSpace(input.Image)
	return input, nil
}
