package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tariqinfo304/PixsaLink/internal/domain"
	"github.com/tariqinfo304/PixsaLink/internal/domain/entity"
	"github.com/tariqinfo304/PixsaLink/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, name, email, password_hash, role, company_id, is_active, created_at, updated_at`

// Create persiste un nuevo usuario. Devuelve domain.ErrEmailAlreadyExists si el email ya existe.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, company_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CompanyID,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CompanyID,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, company_id = $6,
			is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.CompanyID,
		user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// ListByCompany lista los usuarios rol company de una empresa.
func (r *UserRepo) ListByCompany(companyID string) ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE company_id = $1 AND role = $2 ORDER BY created_at DESC`
	return r.scanMany(query, companyID, entity.RoleCompany)
}

// ListDirectClients lista los direct_client activos (vista admin).
func (r *UserRepo) ListDirectClients() ([]*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE role = $1 AND is_active ORDER BY created_at DESC`
	return r.scanMany(query, entity.RoleDirectClient)
}

func (r *UserRepo) scanMany(query string, args ...any) ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CompanyID,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountActiveClients cuenta los asientos activos de un tenant. La cláusula OR
// cubre ambos tipos: para una empresa cuenta sus usuarios rol company, para un
// direct_client degenera en contarse a sí mismo.
func (r *UserRepo) CountActiveClients(ctx context.Context, clientID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM users
		WHERE (company_id = $1 OR id = $1)
		  AND role IN ($2, $3)
		  AND is_active`
	var count int
	err := r.pool.QueryRow(ctx, query, clientID, entity.RoleCompany, entity.RoleDirectClient).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active clients: %w", err)
	}
	return count, nil
}

// DeactivateByCompany desactiva todos los usuarios de una empresa (cascada de borrado).
func (r *UserRepo) DeactivateByCompany(ctx context.Context, companyID string) error {
	query := `UPDATE users SET is_active = false, updated_at = now() WHERE company_id = $1`
	_, err := r.pool.Exec(ctx, query, companyID)
	if err != nil {
		return fmt.Errorf("deactivate company users: %w", err)
	}
	return nil
}
