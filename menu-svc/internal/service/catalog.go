package service

import (
	"context"
	"strings"
	"time"

	"restoran/menu-svc/internal/domain"
)

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, c *domain.Category) error {
	if err := check(c); err != nil {
		return err
	}
	return s.repo.CreateCategory(ctx, c)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, c *domain.Category) error {
	if err := check(c); err != nil {
		return err
	}
	return s.repo.UpdateCategory(ctx, c)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

var _ CategoryServiceInterface = (*CategoryService)(nil)

type MenuItemService struct {
	repo MenuItemRepository
}

func NewMenuItemService(repo MenuItemRepository) *MenuItemService {
	return &MenuItemService{repo: repo}
}

func (s *MenuItemService) Create(ctx context.Context, m *domain.MenuItem) error {
	if err := check(m); err != nil {
		return err
	}
	return s.repo.CreateMenuItem(ctx, m)
}

func (s *MenuItemService) List(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, filter)
}

func (s *MenuItemService) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

func (s *MenuItemService) Update(ctx context.Context, m *domain.MenuItem) error {
	if err := check(m); err != nil {
		return err
	}
	return s.repo.UpdateMenuItem(ctx, m)
}

func (s *MenuItemService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteMenuItem(ctx, id)
}

var _ MenuItemServiceInterface = (*MenuItemService)(nil)

type PromotionService struct {
	repo PromotionRepository
	now  func() time.Time
}

func NewPromotionService(repo PromotionRepository) *PromotionService {
	return &PromotionService{repo: repo, now: time.Now}
}

func (s *PromotionService) Create(ctx context.Context, p *domain.Promotion) error {
	if err := check(p); err != nil {
		return err
	}
	return s.repo.CreatePromotion(ctx, p)
}

func (s *PromotionService) List(ctx context.Context, activeOnly bool) ([]domain.Promotion, error) {
	if !activeOnly {
		return s.repo.ListPromotions(ctx, nil)
	}
	now := s.now()
	return s.repo.ListPromotions(ctx, &now)
}

func (s *PromotionService) Get(ctx context.Context, id int64) (*domain.Promotion, error) {
	return s.repo.GetPromotion(ctx, id)
}

func (s *PromotionService) Update(ctx context.Context, p *domain.Promotion) error {
	if err := check(p); err != nil {
		return err
	}
	return s.repo.UpdatePromotion(ctx, p)
}

func (s *PromotionService) Delete(ctx context.Context, id int64) error {
	return s.repo.DeletePromotion(ctx, id)
}

var _ PromotionServiceInterface = (*PromotionService)(nil)

type ContentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) Create(ctx context.Context, c *domain.TextContent) error {
	c.Key = strings.TrimSpace(c.Key)
	if err := check(c); err != nil {
		return err
	}
	return s.repo.CreateTextContent(ctx, c)
}

func (s *ContentService) List(ctx context.Context) ([]domain.TextContent, error) {
	return s.repo.ListTextContents(ctx)
}

func (s *ContentService) Get(ctx context.Context, key string) (*domain.TextContent, error) {
	return s.repo.GetTextContent(ctx, key)
}

func (s *ContentService) Update(ctx context.Context, c *domain.TextContent) error {
	c.Key = strings.TrimSpace(c.Key)
	if err := check(c); err != nil {
		return err
	}
	return s.repo.UpdateTextContent(ctx, c)
}

func (s *ContentService) Delete(ctx context.Context, key string) error {
	return s.repo.DeleteTextContent(ctx, key)
}

var _ ContentServiceInterface = (*ContentService)(nil)
