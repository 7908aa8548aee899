package postgres

import (
	"context"
	"fmt"

	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador de pagos. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, vendor_id, client_id, client_kind, amount, payment_date, added_by, created_at`

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.VendorPayment) error {
	query := `
		INSERT INTO vendor_payments (id, vendor_id, client_id, client_kind, amount, payment_date, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.VendorID, payment.ClientID, payment.ClientKind,
		payment.Amount, payment.PaymentDate, payment.AddedBy, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByIDAndClient obtiene un pago del tenant. nil si no existe o es de otro tenant.
func (r *PaymentRepo) GetByIDAndClient(id string, client domain.ClientRef) (*entity.VendorPayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM vendor_payments WHERE id = $1 AND client_id = $2 AND client_kind = $3`
	var p entity.VendorPayment
	err := r.q.QueryRow(context.Background(), query, id, client.ID, string(client.Kind)).Scan(
		&p.ID, &p.VendorID, &p.ClientID, &p.ClientKind, &p.Amount, &p.PaymentDate, &p.AddedBy, &p.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByClient lista los pagos del tenant, por fecha de pago descendente.
func (r *PaymentRepo) ListByClient(client domain.ClientRef) ([]*entity.VendorPayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM vendor_payments WHERE client_id = $1 AND client_kind = $2 ORDER BY payment_date DESC`
	rows, err := r.q.Query(context.Background(), query, client.ID, string(client.Kind))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.VendorPayment
	for rows.Next() {
		var p entity.VendorPayment
		if err := rows.Scan(&p.ID, &p.VendorID, &p.ClientID, &p.ClientKind, &p.Amount,
			&p.PaymentDate, &p.AddedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM vendor_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}
