package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// PaymentUseCase es el libro de pagos a proveedores: crear un pago debita el
// saldo del vendor, borrarlo lo acredita. Las mutaciones de saldo corren en
// transacción con la fila del vendor bloqueada (SELECT FOR UPDATE), de modo
// que dos débitos concurrentes nunca se pisan y el saldo jamás queda negativo
// por esta vía.
type PaymentUseCase struct {
	txRunner    TxRunner
	paymentRepo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(txRunner TxRunner, paymentRepo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{txRunner: txRunner, paymentRepo: paymentRepo}
}

// Record registra un pago del tenant contra uno de sus vendors.
//   - Amount debe ser > 0 (domain.ErrInvalidInput).
//   - Vendor ajeno o inexistente -> domain.ErrNotFound (no se filtra existencia).
//   - Saldo insuficiente -> domain.ErrInsufficientBalance, sin mutación alguna.
//   - Éxito: débito y alta del pago en la misma transacción.
func (uc *PaymentUseCase) Record(ctx context.Context, client domain.ClientRef, addedBy string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.VendorID == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	paymentDate := time.Now()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}
	payment := &entity.VendorPayment{
		ID:          uuid.New().String(),
		VendorID:    in.VendorID,
		ClientID:    client.ID,
		ClientKind:  string(client.Kind),
		Amount:      in.Amount,
		PaymentDate: paymentDate,
		AddedBy:     addedBy,
		CreatedAt:   time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(vendorRepo repository.VendorRepository, paymentRepo repository.PaymentRepository) error {
		vendor, err := vendorRepo.GetForUpdate(ctx, in.VendorID)
		if err != nil {
			return err
		}
		if vendor == nil || vendor.ClientID != client.ID || vendor.ClientKind != string(client.Kind) {
			return domain.ErrNotFound
		}
		if vendor.Balance.LessThan(in.Amount) {
			return domain.ErrInsufficientBalance
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		return vendorRepo.UpdateBalance(ctx, vendor.ID, vendor.Balance.Sub(in.Amount))
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// List lista los pagos del tenant, más recientes primero.
func (uc *PaymentUseCase) List(client domain.ClientRef) ([]dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListByClient(client)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		items = append(items, *toPaymentResponse(p))
	}
	return items, nil
}

// Delete borra un pago del tenant y acredita de vuelta el saldo del vendor.
// El crédito es de mejor esfuerzo: si el vendor fue borrado o reasignado a otro
// tenant desde que se registró el pago, se omite en silencio y el borrado del
// pago procede igual.
func (uc *PaymentUseCase) Delete(ctx context.Context, client domain.ClientRef, paymentID string) error {
	return uc.txRunner.Run(ctx, func(vendorRepo repository.VendorRepository, paymentRepo repository.PaymentRepository) error {
		payment, err := paymentRepo.GetByIDAndClient(paymentID, client)
		if err != nil {
			return err
		}
		if payment == nil {
			return domain.ErrNotFound
		}
		vendor, err := vendorRepo.GetForUpdate(ctx, payment.VendorID)
		if err != nil {
			return err
		}
		if vendor != nil && vendor.ClientID == client.ID && vendor.ClientKind == string(client.Kind) {
			if err := vendorRepo.UpdateBalance(ctx, vendor.ID, vendor.Balance.Add(payment.Amount)); err != nil {
				return err
			}
		}
		return paymentRepo.Delete(payment.ID)
	})
}

func toPaymentResponse(p *entity.VendorPayment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		ClientID:    p.ClientID,
		ClientKind:  p.ClientKind,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		AddedBy:     p.AddedBy,
		CreatedAt:   p.CreatedAt,
	}
}
