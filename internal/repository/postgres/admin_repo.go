package postgres

import (
	"context"

	"fc-admin/internal/models"
	"fc-admin/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepo struct{ db *pgxpool.Pool }

func NewAdminRepo(db *pgxpool.Pool) repository.AdminRepository { return &AdminRepo{db: db} }

func (r *AdminRepo) GetByID(ctx context.Context, id string) (*models.AdminUser, error) {
	var a models.AdminUser
	err := r.db.QueryRow(ctx, `
		SELECT id, email, role, full_name, created_at, updated_at
		FROM admin_users WHERE id=$1`, id).
		Scan(&a.ID, &a.Email, &a.Role, &a.FullName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
