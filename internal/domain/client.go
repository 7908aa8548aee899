package domain

import "github.com/tariqinfo304/PixsaLink/internal/domain/entity"

// ClientKind discrimina el tipo de tenant dueño de un recurso.
// Un tenant es una Company (rol company) o un User directo (rol direct_client).
type ClientKind string

const (
	ClientCompany ClientKind = "Company"
	ClientUser    ClientKind = "User"
)

// Valid informa si el discriminador es uno de los dos valores permitidos.
func (k ClientKind) Valid() bool {
	return k == ClientCompany || k == ClientUser
}

// ClientRef referencia polimórfica a un tenant: unión etiquetada {Kind, ID}.
// Todas las consultas con alcance de tenant filtran por ambos campos.
type ClientRef struct {
	Kind ClientKind
	ID   string
}

// IsZero informa si la referencia está vacía (caso super_admin: sin tenant).
func (c ClientRef) IsZero() bool {
	return c.ID == "" && c.Kind == ""
}

// ResolveClient deriva el contexto de tenant de un usuario autenticado.
//   - super_admin  -> ClientRef vacía (no posee vendors ni pagos).
//   - company      -> (CompanyID, Company); ErrNoClientContext si falta CompanyID.
//   - direct_client -> (ID del propio usuario, User).
func ResolveClient(u *entity.User) (ClientRef, error) {
	switch u.Role {
	case entity.RoleSuperAdmin:
		return ClientRef{}, nil
	case entity.RoleCompany:
		if u.CompanyID == nil || *u.CompanyID == "" {
			return ClientRef{}, ErrNoClientContext
		}
		return ClientRef{Kind: ClientCompany, ID: *u.CompanyID}, nil
	default:
		return ClientRef{Kind: ClientUser, ID: u.ID}, nil
	}
}
