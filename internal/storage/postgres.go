package storage

import (
	"database/sql"
	"fmt"

	"github.com/chetansai93/eshanee-chetan-backend/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL DEFAULT '',
			role VARCHAR(20) NOT NULL DEFAULT 'customer',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL,
			category VARCHAR(50) NOT NULL,
			image_url TEXT,
			is_veg BOOLEAN NOT NULL DEFAULT FALSE,
			spice_level INT NOT NULL DEFAULT 1,
			rating NUMERIC(3,1) NOT NULL DEFAULT 0,
			prep_time VARCHAR(50),
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			order_number VARCHAR(50) NOT NULL,
			customer_id INT REFERENCES users(id),
			total_amount NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			delivery_address TEXT,
			special_instructions TEXT,
			order_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id),
			menu_item_id INT NOT NULL REFERENCES menu_items(id),
			quantity INT NOT NULL,
			price NUMERIC(10,2) NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) ListItems(category string, isVeg *bool) ([]domain.MenuItem, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, category,
		       COALESCE(image_url, ''), is_veg, spice_level, rating,
		       COALESCE(prep_time, ''), is_available, created_at
		FROM menu_items
		WHERE is_available = TRUE`
	var args []interface{}
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if isVeg != nil {
		args = append(args, *isVeg)
		query += fmt.Sprintf(" AND is_veg = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
			&item.ImageURL, &item.IsVeg, &item.SpiceLevel, &item.Rating,
			&item.PrepTime, &item.IsAvailable, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) GetItem(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, category,
		       COALESCE(image_url, ''), is_veg, spice_level, rating,
		       COALESCE(prep_time, ''), is_available, created_at
		FROM menu_items
		WHERE id = $1`, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
			&item.ImageURL, &item.IsVeg, &item.SpiceLevel, &item.Rating,
			&item.PrepTime, &item.IsAvailable, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) InsertItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, category, image_url,
		                        is_veg, spice_level, prep_time, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		RETURNING id, rating, created_at`,
		item.Name, item.Description, item.Price, item.Category, nullable(item.ImageURL),
		item.IsVeg, item.SpiceLevel, nullable(item.PrepTime)).
		Scan(&item.ID, &item.Rating, &item.CreatedAt)
}

func (r *PostgresRepository) UpdateItem(id int, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		UPDATE menu_items
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    price = COALESCE($3, price),
		    category = COALESCE($4, category),
		    image_url = COALESCE($5, image_url),
		    is_veg = COALESCE($6, is_veg),
		    spice_level = COALESCE($7, spice_level),
		    prep_time = COALESCE($8, prep_time),
		    is_available = COALESCE($9, is_available)
		WHERE id = $10
		RETURNING id, name, COALESCE(description, ''), price, category,
		          COALESCE(image_url, ''), is_veg, spice_level, rating,
		          COALESCE(prep_time, ''), is_available, created_at`,
		update.Name, update.Description, update.Price, update.Category, update.ImageURL,
		update.IsVeg, update.SpiceLevel, update.PrepTime, update.IsAvailable, id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
			&item.ImageURL, &item.IsVeg, &item.SpiceLevel, &item.Rating,
			&item.PrepTime, &item.IsAvailable, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) SoftDeleteItem(id int) (bool, error) {
	result, err := r.DB.Exec(`UPDATE menu_items SET is_available = FALSE WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// PriceAndAvailability reports a missing item as unavailable rather than as
// an error, so the caller can treat both the same way.
func (r *PostgresRepository) PriceAndAvailability(id int) (float64, bool, error) {
	var price float64
	var available bool
	err := r.DB.QueryRow(`SELECT price, is_available FROM menu_items WHERE id = $1`, id).
		Scan(&price, &available)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return price, available, nil
}

func (r *PostgresRepository) FindActiveCustomerByEmail(email string) (int, bool, error) {
	var id int
	err := r.DB.QueryRow(`
		SELECT id FROM users
		WHERE email = $1 AND role = 'customer' AND is_active = TRUE`, email).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *PostgresRepository) InsertAccount(account *domain.Account) error {
	return r.DB.QueryRow(`
		INSERT INTO users (email, password, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		RETURNING id, created_at`,
		account.Email, account.Password, account.FirstName, account.LastName, account.Role).
		Scan(&account.ID, &account.CreatedAt)
}

// InsertOrderWithLines persists the order header and every line in one
// transaction; a line failure rolls the header back.
func (r *PostgresRepository) InsertOrderWithLines(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (customer_id, order_number, total_amount, status,
		                    delivery_address, special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, order_date, updated_at`,
		order.CustomerID, order.OrderNumber, order.TotalAmount, order.Status,
		nullable(order.DeliveryAddress), nullable(order.SpecialInstructions)).
		Scan(&order.ID, &order.OrderDate, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for _, line := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, quantity, price)
			VALUES ($1, $2, $3, $4)`,
			order.ID, line.MenuItemID, line.Quantity, line.Price); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) UpdateStatus(orderID int, status string) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		UPDATE orders
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING id, order_number, status`,
		status, orderID).
		Scan(&order.ID, &order.OrderNumber, &order.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

const orderColumns = `
	o.id, o.order_number, o.customer_id, o.total_amount, o.status,
	COALESCE(o.delivery_address, ''), COALESCE(o.special_instructions, ''),
	o.order_date, o.updated_at,
	COALESCE(u.first_name || ' ' || u.last_name, ''), COALESCE(u.email, '')`

func scanOrder(row interface{ Scan(...interface{}) error }) (*domain.Order, error) {
	var order domain.Order
	var customerID sql.NullInt64
	err := row.Scan(&order.ID, &order.OrderNumber, &customerID, &order.TotalAmount, &order.Status,
		&order.DeliveryAddress, &order.SpecialInstructions,
		&order.OrderDate, &order.UpdatedAt,
		&order.CustomerName, &order.CustomerEmail)
	if err != nil {
		return nil, err
	}
	if customerID.Valid {
		id := int(customerID.Int64)
		order.CustomerID = &id
	}
	return &order, nil
}

// ListOrders uses a LEFT JOIN so account-less guest orders stay visible to
// employees and admins.
func (r *PostgresRepository) ListOrders(customerID *int, status, date string) ([]domain.Order, error) {
	query := `
		SELECT` + orderColumns + `
		FROM orders o
		LEFT JOIN users u ON o.customer_id = u.id
		WHERE 1=1`
	var args []interface{}
	if customerID != nil {
		args = append(args, *customerID)
		query += fmt.Sprintf(" AND o.customer_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND o.status = $%d", len(args))
	}
	if date != "" {
		args = append(args, date)
		query += fmt.Sprintf(" AND DATE(o.order_date) = $%d::date", len(args))
	}
	query += " ORDER BY o.order_date DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			continue
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(orderID int, customerID *int) (*domain.Order, error) {
	query := `
		SELECT` + orderColumns + `
		FROM orders o
		LEFT JOIN users u ON o.customer_id = u.id
		WHERE o.id = $1`
	args := []interface{}{orderID}
	if customerID != nil {
		args = append(args, *customerID)
		query += fmt.Sprintf(" AND o.customer_id = $%d", len(args))
	}

	order, err := scanOrder(r.DB.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrderLines returns the frozen captured price next to the item's
// current catalog name, description and category.
func (r *PostgresRepository) ListOrderLines(orderID int) ([]domain.OrderLine, error) {
	rows, err := r.DB.Query(`
		SELECT oi.menu_item_id, oi.quantity, oi.price,
		       mi.name, COALESCE(mi.description, ''), mi.category
		FROM order_items oi
		JOIN menu_items mi ON oi.menu_item_id = mi.id
		WHERE oi.order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.MenuItemID, &line.Quantity, &line.Price,
			&line.Name, &line.Description, &line.Category); err != nil {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (r *PostgresRepository) Stats(period, date string) (*domain.OrderStats, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount), 0),
		       COALESCE(AVG(total_amount), 0),
		       COUNT(DISTINCT customer_id),
		       COALESCE(SUM(CASE WHEN status = 'delivered' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'preparing' THEN 1 ELSE 0 END), 0)
		FROM orders`
	var args []interface{}
	switch period {
	case "today":
		query += " WHERE DATE(order_date) = CURRENT_DATE"
	case "week":
		query += " WHERE order_date >= NOW() - INTERVAL '7 days'"
	case "month":
		query += " WHERE order_date >= NOW() - INTERVAL '30 days'"
	default:
		// custom period: exact date when given, otherwise all time
		if date != "" {
			args = append(args, date)
			query += " WHERE DATE(order_date) = $1::date"
		}
	}

	var stats domain.OrderStats
	err := r.DB.QueryRow(query, args...).
		Scan(&stats.TotalOrders, &stats.TotalRevenue, &stats.AverageOrderValue, &stats.UniqueCustomers,
			&stats.CompletedOrders, &stats.PendingOrders, &stats.PreparingOrders)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
