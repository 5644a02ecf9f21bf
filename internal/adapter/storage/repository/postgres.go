package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vitrineshop/vitrine/internal/adapter/storage"
	"github.com/vitrineshop/vitrine/internal/core/domain"
	"github.com/vitrineshop/vitrine/internal/core/port"
)

var orderColumns = []string{
	"id", "number", "status", "payment_status", "items", "total_amount",
	"customer_name", "customer_email", "customer_phone", "delivery_details",
	"created_at", "version",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// itemRecord is the JSON shape of one order line inside the items column.
type itemRecord struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

func itemsToJSON(items []domain.OrderItem) ([]byte, error) {
	records := make([]itemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
		})
	}
	return json.Marshal(records)
}

func itemsFromJSON(data []byte) ([]domain.OrderItem, error) {
	var records []itemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	items := make([]domain.OrderItem, 0, len(records))
	for _, record := range records {
		price, err := decimal.Parse(record.Price)
		if err != nil {
			return nil, fmt.Errorf("decode order item price: %w", err)
		}
		items = append(items, domain.OrderItem{
			ProductID: record.ProductID,
			Name:      record.Name,
			Quantity:  record.Quantity,
			Price:     price,
		})
	}
	return items, nil
}

type pgxRow interface {
	Scan(dest ...any) error
}

func scanOrder(row pgxRow) (*domain.Order, error) {
	order := domain.Order{}
	var items []byte
	err := row.Scan(
		&order.ID,
		&order.Number,
		&order.Status,
		&order.PaymentStatus,
		&items,
		&order.TotalAmount,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Customer.Phone,
		&order.DeliveryDetails,
		&order.CreatedAt,
		&order.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	order.Items, err = itemsFromJSON(items)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	items, err := itemsToJSON(order.Items)
	if err != nil {
		return nil, err
	}

	statement := or.db.QueryBuilder.Insert("orders").
		Columns("number", "status", "payment_status", "items", "total_amount",
			"customer_name", "customer_email", "customer_phone").
		Values(order.Number, order.Status, order.PaymentStatus, items, order.TotalAmount,
			order.Customer.Name, order.Customer.Email, order.Customer.Phone).
		Suffix("RETURNING id, created_at, version")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = or.db.QueryRow(ctx, sql, args...).Scan(&order.ID, &order.CreatedAt, &order.Version)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanOrder(or.db.QueryRow(ctx, sql, args...))
}

func (or *Repository) ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0, limit)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

// UpdateOrderInTx runs fn against a fresh read of the order and writes the
// result back guarded by the version column. Two racing writers cannot both
// succeed: the loser sees domain.ErrConflictingData and retries from the
// read, so side effects inside fn apply exactly once per committed version.
func (or *Repository) UpdateOrderInTx(ctx context.Context, orderID string, fn port.UpdateOrderFn) (*domain.Order, error) {
	var result *domain.Order

	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		statement := or.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		err = fn(order, &txInventory{tx: tx, qb: or.db.QueryBuilder})
		if err != nil {
			if errors.Is(err, domain.ErrNoUpdatedData) {
				result = order
				return nil
			}
			return err
		}

		update := or.db.QueryBuilder.Update("orders").
			Set("status", order.Status).
			Set("payment_status", order.PaymentStatus).
			Set("delivery_details", order.DeliveryDetails).
			Set("version", order.Version+1).
			Where(sq.Eq{"id": orderID, "version": order.Version})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return domain.ErrConflictingData
		}

		order.Version++
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// txInventory adjusts stock counters inside the order's transaction, so the
// order write and its inventory effects commit or roll back together.
type txInventory struct {
	tx pgx.Tx
	qb *sq.StatementBuilderType
}

func (inv *txInventory) AdjustStock(ctx context.Context, productID string, delta int) error {
	statement := inv.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", delta)).
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := inv.tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (or *Repository) ReadProduct(ctx context.Context, productID string) (*domain.Product, error) {
	statement := or.db.QueryBuilder.
		Select("id", "name", "price", "stock").
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	product := domain.Product{}
	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &product, nil
}

func (or *Repository) CreatePaymentTransaction(ctx context.Context, ptx *domain.PaymentTransaction) error {
	statement := or.db.QueryBuilder.Insert("payment_transactions").
		Columns("merchant_transaction_id", "merchant_user_id", "order_id", "amount", "created_at").
		Values(ptx.MerchantTransactionID, ptx.MerchantUserID, ptx.OrderID, ptx.Amount, ptx.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = or.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrConflictingData
		}
		return err
	}
	return nil
}

func (or *Repository) ReadPaymentTransaction(ctx context.Context, transactionID string) (*domain.PaymentTransaction, error) {
	statement := or.db.QueryBuilder.
		Select("merchant_transaction_id", "merchant_user_id", "order_id", "amount", "created_at").
		From("payment_transactions").
		Where(sq.Eq{"merchant_transaction_id": transactionID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	ptx := domain.PaymentTransaction{}
	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&ptx.MerchantTransactionID,
		&ptx.MerchantUserID,
		&ptx.OrderID,
		&ptx.Amount,
		&ptx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &ptx, nil
}

func (or *Repository) DeletePaymentTransaction(ctx context.Context, transactionID string) error {
	statement := or.db.QueryBuilder.
		Delete("payment_transactions").
		Where(sq.Eq{"merchant_transaction_id": transactionID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = or.db.Exec(ctx, sql, args...)
	return err
}

func (or *Repository) ListPaymentTransactions(ctx context.Context) ([]*domain.PaymentTransaction, error) {
	statement := or.db.QueryBuilder.
		Select("merchant_transaction_id", "merchant_user_id", "order_id", "amount", "created_at").
		From("payment_transactions").
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.PaymentTransaction, 0)
	for rows.Next() {
		ptx := domain.PaymentTransaction{}
		err := rows.Scan(
			&ptx.MerchantTransactionID,
			&ptx.MerchantUserID,
			&ptx.OrderID,
			&ptx.Amount,
			&ptx.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &ptx)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
