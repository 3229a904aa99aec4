package repository

import (
	"context"

	"github.com/spec-kit/book-purple/internal/domain"
)

// UserRepository defines read access to credential records and their role.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID returns pgx.ErrNoRows when the user does not exist.
func (r *userRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	const query = `
        SELECT u.user_id, u.passwd, u.user_name,
               COALESCE(u.birth, ''), COALESCE(u.gender, ''), COALESCE(u.phone, ''),
               COALESCE(u.email, ''), COALESCE(u.addr, ''), COALESCE(u.addr_detail, ''),
               u.use_yn, u.del_yn, u.created_at, u.updated_at,
               r.role_id, r.role_name, r.use_yn
        FROM "user" u
        JOIN role r ON r.role_id = u.user_role
        WHERE u.user_id=$1`

	var user domain.User
	if err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.PasswordHash,
		&user.UserName,
		&user.Birth,
		&user.Gender,
		&user.Phone,
		&user.Email,
		&user.Addr,
		&user.AddrDetail,
		&user.UseYn,
		&user.DelYn,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Role.RoleID,
		&user.Role.RoleName,
		&user.Role.UseYn,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
