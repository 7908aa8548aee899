package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tariqinfo304/PixsaLink/internal/application/dto"
	"github.com/tariqinfo304/PixsaLink/internal/application/ledger"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — repos y runner transaccional
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	vendors  map[string]*entity.Vendor
	payments map[string]*entity.VendorPayment
}

func newMemStore() *memStore {
	return &memStore{
		vendors:  make(map[string]*entity.Vendor),
		payments: make(map[string]*entity.VendorPayment),
	}
}

type memVendorRepo struct{ store *memStore }

func (r *memVendorRepo) Create(v *entity.Vendor) error {
	r.store.vendors[v.ID] = v
	return nil
}

func (r *memVendorRepo) GetByIDAndClient(id string, client domain.ClientRef) (*entity.Vendor, error) {
	v := r.store.vendors[id]
	if v == nil || v.ClientID != client.ID || v.ClientKind != string(client.Kind) {
		return nil, nil
	}
	return v, nil
}

func (r *memVendorRepo) ListByClient(client domain.ClientRef) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range r.store.vendors {
		if v.ClientID == client.ID && v.ClientKind == string(client.Kind) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVendorRepo) ListAll(companyID string) ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range r.store.vendors {
		if companyID == "" || v.ClientID == companyID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *memVendorRepo) Update(v *entity.Vendor) error {
	r.store.vendors[v.ID] = v
	return nil
}

func (r *memVendorRepo) DeleteByIDAndClient(id string, client domain.ClientRef) (bool, error) {
	v, _ := r.GetByIDAndClient(id, client)
	if v == nil {
		return false, nil
	}
	delete(r.store.vendors, id)
	return true, nil
}

func (r *memVendorRepo) GetForUpdate(_ context.Context, id string) (*entity.Vendor, error) {
	return r.store.vendors[id], nil
}

func (r *memVendorRepo) UpdateBalance(_ context.Context, id string, balance decimal.Decimal) error {
	if v, ok := r.store.vendors[id]; ok {
		v.Balance = balance
	}
	return nil
}

type memPaymentRepo struct{ store *memStore }

func (r *memPaymentRepo) Create(p *entity.VendorPayment) error {
	r.store.payments[p.ID] = p
	return nil
}

func (r *memPaymentRepo) GetByIDAndClient(id string, client domain.ClientRef) (*entity.VendorPayment, error) {
	p := r.store.payments[id]
	if p == nil || p.ClientID != client.ID || p.ClientKind != string(client.Kind) {
		return nil, nil
	}
	return p, nil
}

func (r *memPaymentRepo) ListByClient(client domain.ClientRef) ([]*entity.VendorPayment, error) {
	var out []*entity.VendorPayment
	for _, p := range r.store.payments {
		if p.ClientID == client.ID && p.ClientKind == string(client.Kind) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPaymentRepo) Delete(id string) error {
	delete(r.store.payments, id)
	return nil
}

// memTxRunner ejecuta fn directo contra el store compartido. Si fn falla,
// restaura el snapshot previo para emular el rollback de la transacción real.
type memTxRunner struct{ store *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(repository.VendorRepository, repository.PaymentRepository) error) error {
	snapVendors := make(map[string]*entity.Vendor, len(t.store.vendors))
	for id, v := range t.store.vendors {
		copia := *v
		snapVendors[id] = &copia
	}
	snapPayments := make(map[string]*entity.VendorPayment, len(t.store.payments))
	for id, p := range t.store.payments {
		copia := *p
		snapPayments[id] = &copia
	}
	err := fn(&memVendorRepo{store: t.store}, &memPaymentRepo{store: t.store})
	if err != nil {
		t.store.vendors = snapVendors
		t.store.payments = snapPayments
	}
	return err
}

var _ ledger.TxRunner = (*memTxRunner)(nil)

func newLedger(store *memStore) *ledger.PaymentUseCase {
	return ledger.NewPaymentUseCase(&memTxRunner{store: store}, &memPaymentRepo{store: store})
}

func seedVendor(store *memStore, id, clientID string, kind domain.ClientKind, balance string) {
	store.vendors[id] = &entity.Vendor{
		ID: id, ClientID: clientID, ClientKind: string(kind),
		Name: "Proveedor " + id, Balance: decimal.RequireFromString(balance),
	}
}

var tenantC1 = domain.ClientRef{Kind: domain.ClientCompany, ID: "c1"}

// ──────────────────────────────────────────────────────────────────────────────
// Record
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentRecord_DebitaSaldo(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "100.00")
	uc := newLedger(store)

	out, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("40.50"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, decimal.RequireFromString("59.50").Equal(store.vendors["v1"].Balance),
		"el saldo debe quedar en 100.00 - 40.50")
	assert.Len(t, store.payments, 1)
	assert.Equal(t, "u1", out.AddedBy)
}

func TestPaymentRecord_SaldoInsuficiente_SinMutacion(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "10.00")
	uc := newLedger(store)

	_, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("10.01"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.True(t, decimal.RequireFromString("10.00").Equal(store.vendors["v1"].Balance),
		"el saldo no debe tocarse")
	assert.Empty(t, store.payments, "no debe registrarse ningún pago")
}

func TestPaymentRecord_SaldoExacto_QuedaEnCero(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "25.00")
	uc := newLedger(store)

	_, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("25.00"),
	})
	require.NoError(t, err, "un pago por el saldo exacto es válido")
	assert.True(t, store.vendors["v1"].Balance.IsZero())
}

func TestPaymentRecord_VendorDeOtroTenant_NotFound(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "otro", domain.ClientUser, "100.00")
	uc := newLedger(store)

	_, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("5.00"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"un vendor ajeno se comporta como inexistente, no como prohibido")
}

func TestPaymentRecord_MontoNoPositivo_Invalido(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "100.00")
	uc := newLedger(store)

	for _, monto := range []string{"0", "-3.00"} {
		_, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
			VendorID: "v1", Amount: decimal.RequireFromString(monto),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto %s debe rechazarse", monto)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete — crédito recíproco
// ──────────────────────────────────────────────────────────────────────────────

func TestPaymentDelete_RestauraSaldo(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "100.00")
	uc := newLedger(store)

	out, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), tenantC1, out.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100.00").Equal(store.vendors["v1"].Balance),
		"el ciclo registrar+borrar debe dejar el saldo como al inicio")
	assert.Empty(t, store.payments)
}

func TestPaymentDelete_VendorBorrado_ElPagoSeEliminaIgual(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "100.00")
	uc := newLedger(store)

	out, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)
	delete(store.vendors, "v1")

	err = uc.Delete(context.Background(), tenantC1, out.ID)
	require.NoError(t, err, "el crédito es de mejor esfuerzo: sin vendor, el borrado procede")
	assert.Empty(t, store.payments)
}

func TestPaymentDelete_PagoDeOtroTenant_NotFound(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "100.00")
	uc := newLedger(store)

	out, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)

	otro := domain.ClientRef{Kind: domain.ClientUser, ID: "intruso"}
	err = uc.Delete(context.Background(), otro, out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, store.payments, 1, "el pago de otro tenant debe quedar intacto")
}

func TestPaymentRecord_FechaExplicita(t *testing.T) {
	store := newMemStore()
	seedVendor(store, "v1", "c1", domain.ClientCompany, "100.00")
	uc := newLedger(store)

	fecha := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	out, err := uc.Record(context.Background(), tenantC1, "u1", dto.CreatePaymentRequest{
		VendorID: "v1", Amount: decimal.RequireFromString("1.00"), PaymentDate: &fecha,
	})
	require.NoError(t, err)
	assert.True(t, fecha.Equal(out.PaymentDate))
}
