package postgres

import (
	"context"
	"fmt"
	"strings"

	"fc-admin/internal/models"
	"fc-admin/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AppUserRepo struct{ db *pgxpool.Pool }

func NewAppUserRepo(db *pgxpool.Pool) repository.AppUserRepository { return &AppUserRepo{db: db} }

const appUserCols = `id, email, full_name, phone, company, role, avatar_url,
	document_number, passport_number, preferences, created_at, updated_at`

func scanAppUser(s scanner) (*models.AppUser, error) {
	var u models.AppUser
	err := s.Scan(&u.ID, &u.Email, &u.FullName, &u.Phone, &u.Company, &u.Role, &u.AvatarURL,
		&u.DocumentNumber, &u.PassportNumber, &u.Preferences, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// appUserFilter matches q against email or full name, case-insensitively.
func appUserFilter(q string) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(q); s != "" {
		p := "%" + s + "%"
		args = append(args, p, p)
		clauses = append(clauses, "(email ILIKE $"+itoa(len(args)-1)+" OR full_name ILIKE $"+itoa(len(args))+")")
	}
	return strings.Join(clauses, " AND "), args
}

// List returns a page of app users, newest first, and the total match count.
func (r *AppUserRepo) List(ctx context.Context, q string, limit, offset int) ([]models.AppUser, int, error) {
	limit, offset = page(limit, offset)
	where, args := appUserFilter(q)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, appUserCols, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.AppUser{}
	for rows.Next() {
		u, err := scanAppUser(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *u)
	}
	return out, total, rows.Err()
}

func (r *AppUserRepo) GetByID(ctx context.Context, id string) (*models.AppUser, error) {
	u, err := scanAppUser(r.db.QueryRow(ctx, `SELECT `+appUserCols+` FROM users WHERE id=$1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
