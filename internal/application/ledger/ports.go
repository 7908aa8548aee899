package ledger

import (
	"context"

	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Lo implementa postgres.TxRunner; la interfaz permite un runner en memoria en tests.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		vendorRepo repository.VendorRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
