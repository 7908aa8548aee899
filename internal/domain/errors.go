package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrAccountDeactivated = errors.New("cuenta desactivada")

	// Licenciamiento y contexto de tenant.
	ErrNoClientContext  = errors.New("sin contexto de cliente asociado")
	ErrNoActiveLicense  = errors.New("no hay licencia activa")
	ErrLicenseExpired   = errors.New("la licencia ha expirado")
	ErrSeatLimitReached = errors.New("límite de usuarios de la licencia alcanzado")

	// Libro de pagos a proveedores.
	ErrInsufficientBalance = errors.New("saldo del proveedor insuficiente")
)
