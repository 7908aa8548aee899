package entity

import "time"

// Company representa una organización tenant del sistema.
// LicenseType y LicenseExpiry son espejos desnormalizados para listados del
// panel admin; la licencia vigente siempre se resuelve contra la tabla licenses.
type Company struct {
	ID            string
	Name          string
	CRN           string // registro mercantil, exactamente 10 dígitos, único
	Email         string
	LicenseType   string     // espejo: limited | unlimited
	LicenseExpiry *time.Time // espejo: nil = sin licencia emitida aún
	IsActive      bool
	CreatedBy     string // ID del super_admin que la creó
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
