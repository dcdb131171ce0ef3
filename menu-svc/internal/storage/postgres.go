package storage

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"restoran/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const categoryColumns = `id, name_uz, name_ru, name_en, COALESCE(image_url, ''), sort_order, created_at`

func scanCategory(row interface{ Scan(...any) error }, c *domain.Category) error {
	return row.Scan(&c.ID, &c.NameUz, &c.NameRu, &c.NameEn, &c.ImageURL, &c.SortOrder, &c.CreatedAt)
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO categories (name_uz, name_ru, name_en, image_url, sort_order)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, created_at`,
		c.NameUz, c.NameRu, c.NameEn, c.ImageURL, c.SortOrder,
	).Scan(&c.ID, &c.CreatedAt)
	return mapErr("create category", err)
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY sort_order, id`)
	if err != nil {
		return nil, mapErr("list categories", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, mapErr("scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	row := r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	if err := scanCategory(row, &c); err != nil {
		return nil, mapErr("get category "+strconv.FormatInt(id, 10), err)
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE categories
		SET name_uz = $1, name_ru = $2, name_en = $3, image_url = NULLIF($4, ''), sort_order = $5
		WHERE id = $6`,
		c.NameUz, c.NameRu, c.NameEn, c.ImageURL, c.SortOrder, c.ID)
	if err != nil {
		return mapErr("update category", err)
	}
	rows, err := result.RowsAffected()
	return affected("update category", rows, err)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return mapErr("delete category", err)
	}
	rows, err := result.RowsAffected()
	return affected("delete category", rows, err)
}

const menuItemColumns = `id, category_id, name_uz, name_ru, name_en,
	description_uz, description_ru, description_en,
	ingredients_uz, ingredients_ru, ingredients_en,
	price, COALESCE(image_url, ''), is_available, created_at`

func scanMenuItem(row interface{ Scan(...any) error }, m *domain.MenuItem) error {
	return row.Scan(&m.ID, &m.CategoryID, &m.NameUz, &m.NameRu, &m.NameEn,
		&m.DescriptionUz, &m.DescriptionRu, &m.DescriptionEn,
		&m.IngredientsUz, &m.IngredientsRu, &m.IngredientsEn,
		&m.Price, &m.ImageURL, &m.IsAvailable, &m.CreatedAt)
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (category_id, name_uz, name_ru, name_en,
			description_uz, description_ru, description_en,
			ingredients_uz, ingredients_ru, ingredients_en,
			price, image_url, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), $13)
		RETURNING id, created_at`,
		m.CategoryID, m.NameUz, m.NameRu, m.NameEn,
		m.DescriptionUz, m.DescriptionRu, m.DescriptionEn,
		m.IngredientsUz, m.IngredientsRu, m.IngredientsEn,
		m.Price, m.ImageURL, m.IsAvailable,
	).Scan(&m.ID, &m.CreatedAt)
	return mapErr("create menu item", err)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE ($1 = 0 OR category_id = $1) AND (NOT $2 OR is_available)
		ORDER BY category_id, id`,
		filter.CategoryID, filter.AvailableOnly)
	if err != nil {
		return nil, mapErr("list menu items", err)
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var m domain.MenuItem
		if err := scanMenuItem(rows, &m); err != nil {
			return nil, mapErr("scan menu item", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int64) (*domain.MenuItem, error) {
	var m domain.MenuItem
	row := r.DB.QueryRowContext(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id)
	if err := scanMenuItem(row, &m); err != nil {
		return nil, mapErr("get menu item "+strconv.FormatInt(id, 10), err)
	}
	return &m, nil
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET category_id = $1, name_uz = $2, name_ru = $3, name_en = $4,
			description_uz = $5, description_ru = $6, description_en = $7,
			ingredients_uz = $8, ingredients_ru = $9, ingredients_en = $10,
			price = $11, image_url = NULLIF($12, ''), is_available = $13
		WHERE id = $14`,
		m.CategoryID, m.NameUz, m.NameRu, m.NameEn,
		m.DescriptionUz, m.DescriptionRu, m.DescriptionEn,
		m.IngredientsUz, m.IngredientsRu, m.IngredientsEn,
		m.Price, m.ImageURL, m.IsAvailable, m.ID)
	if err != nil {
		return mapErr("update menu item", err)
	}
	rows, err := result.RowsAffected()
	return affected("update menu item", rows, err)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return mapErr("delete menu item", err)
	}
	rows, err := result.RowsAffected()
	return affected("delete menu item", rows, err)
}

const promotionColumns = `id, title_uz, title_ru, title_en,
	description_uz, description_ru, description_en,
	price, discount_percent, COALESCE(image_url, ''), start_date, end_date, is_active, created_at`

func scanPromotion(row interface{ Scan(...any) error }, p *domain.Promotion) error {
	return row.Scan(&p.ID, &p.TitleUz, &p.TitleRu, &p.TitleEn,
		&p.DescriptionUz, &p.DescriptionRu, &p.DescriptionEn,
		&p.Price, &p.DiscountPercent, &p.ImageURL, &p.StartDate, &p.EndDate, &p.IsActive, &p.CreatedAt)
}

func (r *PostgresRepository) CreatePromotion(ctx context.Context, p *domain.Promotion) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO promotions (title_uz, title_ru, title_en,
			description_uz, description_ru, description_en,
			price, discount_percent, image_url, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)
		RETURNING id, created_at`,
		p.TitleUz, p.TitleRu, p.TitleEn,
		p.DescriptionUz, p.DescriptionRu, p.DescriptionEn,
		p.Price, p.DiscountPercent, p.ImageURL, p.StartDate, p.EndDate, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt)
	return mapErr("create promotion", err)
}

// ListPromotions returns every promotion, or with activeAt set only those
// switched on whose date range contains it.
func (r *PostgresRepository) ListPromotions(ctx context.Context, activeAt *time.Time) ([]domain.Promotion, error) {
	query := `SELECT ` + promotionColumns + ` FROM promotions`
	args := []any{}
	if activeAt != nil {
		query += ` WHERE is_active AND start_date <= $1 AND end_date >= $1`
		args = append(args, *activeAt)
	}
	query += ` ORDER BY start_date DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapErr("list promotions", err)
	}
	defer rows.Close()

	promotions := []domain.Promotion{}
	for rows.Next() {
		var p domain.Promotion
		if err := scanPromotion(rows, &p); err != nil {
			return nil, mapErr("scan promotion", err)
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}

func (r *PostgresRepository) GetPromotion(ctx context.Context, id int64) (*domain.Promotion, error) {
	var p domain.Promotion
	row := r.DB.QueryRowContext(ctx, `SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id)
	if err := scanPromotion(row, &p); err != nil {
		return nil, mapErr("get promotion "+strconv.FormatInt(id, 10), err)
	}
	return &p, nil
}

func (r *PostgresRepository) UpdatePromotion(ctx context.Context, p *domain.Promotion) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE promotions
		SET title_uz = $1, title_ru = $2, title_en = $3,
			description_uz = $4, description_ru = $5, description_en = $6,
			price = $7, discount_percent = $8, image_url = NULLIF($9, ''),
			start_date = $10, end_date = $11, is_active = $12
		WHERE id = $13`,
		p.TitleUz, p.TitleRu, p.TitleEn,
		p.DescriptionUz, p.DescriptionRu, p.DescriptionEn,
		p.Price, p.DiscountPercent, p.ImageURL, p.StartDate, p.EndDate, p.IsActive, p.ID)
	if err != nil {
		return mapErr("update promotion", err)
	}
	rows, err := result.RowsAffected()
	return affected("update promotion", rows, err)
}

func (r *PostgresRepository) DeletePromotion(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM promotions WHERE id = $1", id)
	if err != nil {
		return mapErr("delete promotion", err)
	}
	rows, err := result.RowsAffected()
	return affected("delete promotion", rows, err)
}

const contentColumns = `id, key, text_uz, text_ru, text_en, updated_at`

func scanContent(row interface{ Scan(...any) error }, c *domain.TextContent) error {
	return row.Scan(&c.ID, &c.Key, &c.TextUz, &c.TextRu, &c.TextEn, &c.UpdatedAt)
}

func (r *PostgresRepository) CreateTextContent(ctx context.Context, c *domain.TextContent) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO text_contents (key, text_uz, text_ru, text_en)
		VALUES ($1, $2, $3, $4)
		RETURNING id, updated_at`,
		c.Key, c.TextUz, c.TextRu, c.TextEn,
	).Scan(&c.ID, &c.UpdatedAt)
	return mapErr("create text content", err)
}

func (r *PostgresRepository) ListTextContents(ctx context.Context) ([]domain.TextContent, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+contentColumns+` FROM text_contents ORDER BY key`)
	if err != nil {
		return nil, mapErr("list text contents", err)
	}
	defer rows.Close()

	contents := []domain.TextContent{}
	for rows.Next() {
		var c domain.TextContent
		if err := scanContent(rows, &c); err != nil {
			return nil, mapErr("scan text content", err)
		}
		contents = append(contents, c)
	}
	return contents, rows.Err()
}

func (r *PostgresRepository) GetTextContent(ctx context.Context, key string) (*domain.TextContent, error) {
	var c domain.TextContent
	row := r.DB.QueryRowContext(ctx, `SELECT `+contentColumns+` FROM text_contents WHERE key = $1`, key)
	if err := scanContent(row, &c); err != nil {
		return nil, mapErr("get text content "+key, err)
	}
	return &c, nil
}

// UpdateTextContent matches on id so a PATCH may rename the key.
func (r *PostgresRepository) UpdateTextContent(ctx context.Context, c *domain.TextContent) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE text_contents
		SET key = $1, text_uz = $2, text_ru = $3, text_en = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`,
		c.Key, c.TextUz, c.TextRu, c.TextEn, c.ID,
	).Scan(&c.UpdatedAt)
	return mapErr("update text content", err)
}

func (r *PostgresRepository) DeleteTextContent(ctx context.Context, key string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM text_contents WHERE key = $1", key)
	if err != nil {
		return mapErr("delete text content", err)
	}
	rows, err := result.RowsAffected()
	return affected("delete text content", rows, err)
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return mapErr("begin order", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, phone, address, comment, language, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		order.CustomerName, order.Phone, order.Address, order.Comment, order.Language, order.TotalAmount, order.Status,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return mapErr("create order", err)
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, promotion_id, name, quantity, price)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, nullID(item.MenuItemID), nullID(item.PromotionID), item.Name, item.Quantity, item.Price,
		); err != nil {
			return mapErr("create order item", err)
		}
	}

	return mapErr("commit order", tx.Commit())
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int64, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return mapErr("save qr code", err)
}

const orderColumns = `id, customer_name, phone, address, comment, language, total_amount, status, created_at`

func scanOrder(row interface{ Scan(...any) error }, o *domain.Order) error {
	return row.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.Comment, &o.Language, &o.TotalAmount, &o.Status, &o.CreatedAt)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int64) (*domain.Order, []domain.OrderItem, error) {
	var order domain.Order
	row := r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	if err := scanOrder(row, &order); err != nil {
		return nil, nil, mapErr("get order "+strconv.FormatInt(orderID, 10), err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT COALESCE(menu_item_id, 0), COALESCE(promotion_id, 0), name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, nil, mapErr("list order items", err)
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.PromotionID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, nil, mapErr("scan order item", err)
		}
		items = append(items, item)
	}
	return &order, items, rows.Err()
}

func (r *PostgresRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, mapErr("list orders", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, mapErr("scan order", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int64) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, mapErr("get qr code", err)
	}
	return qrCode, nil
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}
