package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "github.com/mkazlauskas/shoplt/internal/domain/errors"
	"github.com/mkazlauskas/shoplt/internal/domain/model"
	"github.com/mkazlauskas/shoplt/internal/domain/repository"
)

// DB is the subset of pgxpool.Pool the storage needs. Narrowing the
// dependency lets tests substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	db     DB
	logger *slog.Logger
}

type categoryRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type cartRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// newPgxPool is a seam for tests to substitute the connection pool.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (DB, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{db: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// NewWithDB wraps an existing connection without schema initialization.
func NewWithDB(db DB, logger *slog.Logger) *Storage {
	return &Storage{db: db, logger: logger}
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Categories() repository.CategoryRepository {
	return &categoryRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Carts() repository.CartRepository {
	return &cartRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            first_name TEXT NOT NULL DEFAULT '',
            last_name TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            phone TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            category_id BIGINT NOT NULL REFERENCES categories(id),
            title TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC(9,2) NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            id SERIAL PRIMARY KEY,
            owner_id BIGINT REFERENCES customers(id),
            session_id TEXT NOT NULL DEFAULT '',
            total_products INT NOT NULL DEFAULT 0,
            final_price NUMERIC(9,2) NOT NULL DEFAULT 0,
            in_order BOOLEAN NOT NULL DEFAULT FALSE,
            for_anonymous_user BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            id SERIAL PRIMARY KEY,
            cart_id BIGINT NOT NULL REFERENCES carts(id),
            product_id BIGINT NOT NULL REFERENCES products(id),
            qty INT NOT NULL DEFAULT 1,
            final_price NUMERIC(9,2) NOT NULL,
            UNIQUE (cart_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            cart_id BIGINT NOT NULL REFERENCES carts(id),
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            address TEXT NOT NULL,
            buying_type TEXT NOT NULL,
            comment TEXT NOT NULL DEFAULT '',
            total NUMERIC(9,2) NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_carts_owner ON carts(owner_id) WHERE NOT in_order`,
		`CREATE INDEX IF NOT EXISTS idx_carts_session ON carts(session_id) WHERE NOT in_order`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- CategoryRepository implementation ---

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	const query = `SELECT id, name, slug FROM categories ORDER BY name`
	rows, err := r.storage.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	const query = `SELECT id, name, slug FROM categories WHERE slug=$1`
	var c model.Category
	err := r.storage.db.QueryRow(ctx, query, slug).Scan(&c.ID, &c.Name, &c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, category_id, title, slug, description, price, created_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Description, &p.Price, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products ORDER BY title`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE category_id=$1 ORDER BY title`
	return r.queryProducts(ctx, query, categoryID)
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.storage.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE slug=$1`
	p, err := scanProduct(r.storage.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// --- CartRepository implementation ---

const cartColumns = `id, owner_id, session_id, total_products, final_price, in_order, for_anonymous_user, created_at`

// recalcQuery rewrites the cart's derived totals from its lines. It runs in
// the same transaction as every line mutation.
const recalcQuery = `UPDATE carts SET
    total_products = COALESCE((SELECT SUM(qty) FROM cart_items WHERE cart_id=$1), 0),
    final_price = COALESCE((SELECT SUM(final_price) FROM cart_items WHERE cart_id=$1), 0)
    WHERE id=$1`

func (r *cartRepository) GetByID(ctx context.Context, id int64) (*model.Cart, error) {
	const query = `SELECT ` + cartColumns + ` FROM carts WHERE id=$1`
	return r.fetchCart(ctx, query, id)
}

func (r *cartRepository) GetOpenByOwner(ctx context.Context, customerID int64) (*model.Cart, error) {
	const query = `SELECT ` + cartColumns + ` FROM carts WHERE owner_id=$1 AND NOT in_order ORDER BY created_at DESC LIMIT 1`
	return r.fetchCart(ctx, query, customerID)
}

func (r *cartRepository) GetOpenBySession(ctx context.Context, sessionID string) (*model.Cart, error) {
	const query = `SELECT ` + cartColumns + ` FROM carts WHERE session_id=$1 AND NOT in_order ORDER BY created_at DESC LIMIT 1`
	return r.fetchCart(ctx, query, sessionID)
}

func (r *cartRepository) fetchCart(ctx context.Context, query string, arg any) (*model.Cart, error) {
	var c model.Cart
	err := r.storage.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.OwnerID, &c.SessionID, &c.TotalProducts, &c.FinalPrice,
		&c.InOrder, &c.ForAnonymousUser, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.loadItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Items = items
	return &c, nil
}

func (r *cartRepository) loadItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	const query = `SELECT ci.id, ci.cart_id, ci.product_id, p.title, p.slug, p.price, ci.qty, ci.final_price
                   FROM cart_items ci JOIN products p ON p.id = ci.product_id
                   WHERE ci.cart_id=$1 ORDER BY ci.id`
	rows, err := r.storage.db.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ID, &item.CartID, &item.ProductID, &item.Title, &item.Slug, &item.UnitPrice, &item.Qty, &item.FinalPrice); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) Create(ctx context.Context, ownerID *int64, sessionID string, anonymous bool) (*model.Cart, error) {
	const query = `INSERT INTO carts (owner_id, session_id, for_anonymous_user)
                   VALUES ($1, $2, $3)
                   RETURNING id, created_at`
	var c model.Cart
	err := r.storage.db.QueryRow(ctx, query, ownerID, sessionID, anonymous).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	c.OwnerID = ownerID
	c.SessionID = sessionID
	c.ForAnonymousUser = anonymous
	c.FinalPrice = decimal.Zero
	return &c, nil
}

func (r *cartRepository) AddItem(ctx context.Context, cartID int64, product *model.Product) (bool, error) {
	created := false
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO cart_items (cart_id, product_id, qty, final_price)
                        VALUES ($1, $2, 1, $3)
                        ON CONFLICT (cart_id, product_id) DO NOTHING`
		tag, err := tx.Exec(ctx, insert, cartID, product.ID, product.Price)
		if err != nil {
			return err
		}
		created = tag.RowsAffected() > 0
		if !created {
			return nil
		}
		_, err = tx.Exec(ctx, recalcQuery, cartID)
		return err
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, cartID, productID int64, qty int) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE cart_items
                        SET qty=$3, final_price=(SELECT price FROM products WHERE id=$2) * $3
                        WHERE cart_id=$1 AND product_id=$2`
		tag, err := tx.Exec(ctx, update, cartID, productID, qty)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		_, err = tx.Exec(ctx, recalcQuery, cartID)
		return err
	})
}

func (r *cartRepository) RemoveItem(ctx context.Context, cartID, productID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const remove = `DELETE FROM cart_items WHERE cart_id=$1 AND product_id=$2`
		tag, err := tx.Exec(ctx, remove, cartID, productID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		_, err = tx.Exec(ctx, recalcQuery, cartID)
		return err
	})
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash, email, firstName, lastName string) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, email, first_name, last_name)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	var u model.User
	err := r.storage.db.QueryRow(ctx, query, login, passwordHash, email, firstName, lastName).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Email = email
	u.FirstName = firstName
	u.LastName = lastName
	return &u, nil
}

const userColumns = `id, login, password_hash, email, first_name, last_name, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Email, &u.FirstName, &u.LastName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE login=$1`
	return scanUser(r.storage.db.QueryRow(ctx, query, login))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.db.QueryRow(ctx, query, id))
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, userID int64, phone, address string) (*model.Customer, error) {
	const query = `INSERT INTO customers (user_id, phone, address) VALUES ($1, $2, $3) RETURNING id`
	var c model.Customer
	err := r.storage.db.QueryRow(ctx, query, userID, phone, address).Scan(&c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	c.UserID = userID
	c.Phone = phone
	c.Address = address
	return &c, nil
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.UserID, &c.Phone, &c.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) GetByUser(ctx context.Context, userID int64) (*model.Customer, error) {
	const query = `SELECT id, user_id, phone, address FROM customers WHERE user_id=$1`
	return scanCustomer(r.storage.db.QueryRow(ctx, query, userID))
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, user_id, phone, address FROM customers WHERE id=$1`
	return scanCustomer(r.storage.db.QueryRow(ctx, query, id))
}

// --- OrderRepository implementation ---

// CreateFromCart freezes the cart and inserts the order in one transaction.
// The guarded freeze update matches zero rows when the cart was already
// converted, which makes concurrent placement a single-winner race.
func (r *orderRepository) CreateFromCart(ctx context.Context, cartID, customerID int64, details model.OrderDetails, status model.OrderStatus) (*model.Order, error) {
	var order model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const freeze = `UPDATE carts SET in_order=TRUE WHERE id=$1 AND in_order=FALSE`
		tag, err := tx.Exec(ctx, freeze, cartID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("cart %d already converted: %w", cartID, domainErrors.ErrConflict)
		}

		const totalQuery = `SELECT final_price FROM carts WHERE id=$1`
		var total decimal.Decimal
		if err := tx.QueryRow(ctx, totalQuery, cartID).Scan(&total); err != nil {
			return err
		}

		const insert = `INSERT INTO orders (customer_id, cart_id, first_name, last_name, phone, address, buying_type, comment, total, status)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                        RETURNING id, created_at`
		err = tx.QueryRow(ctx, insert,
			customerID, cartID,
			details.FirstName, details.LastName, details.Phone, details.Address,
			details.BuyingType, details.Comment, total, status,
		).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		order.CustomerID = customerID
		order.CartID = cartID
		order.FirstName = details.FirstName
		order.LastName = details.LastName
		order.Phone = details.Phone
		order.Address = details.Address
		order.BuyingType = details.BuyingType
		order.Comment = details.Comment
		order.Total = total
		order.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	const query = `SELECT id, customer_id, cart_id, first_name, last_name, phone, address, buying_type, comment, total, status, created_at
                   FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.CartID, &o.FirstName, &o.LastName, &o.Phone, &o.Address, &o.BuyingType, &o.Comment, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.Ping(ctx)
}

var _ repository.Factory = (*Storage)(nil)
