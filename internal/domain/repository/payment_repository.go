package repository

import (
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para VendorPayment (DIP).
// Sin Update: los pagos son eventos inmutables del libro.
type PaymentRepository interface {
	Create(payment *entity.VendorPayment) error
	GetByIDAndClient(id string, client domain.ClientRef) (*entity.VendorPayment, error)
	// ListByClient lista pagos del tenant ordenados por paymentDate descendente.
	ListByClient(client domain.ClientRef) ([]*entity.VendorPayment, error)
	Delete(id string) error
}
