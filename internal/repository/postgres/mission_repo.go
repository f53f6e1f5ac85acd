package postgres

import (
	"context"
	"fmt"
	"strings"

	"fc-admin/internal/models"
	"fc-admin/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MissionRepo struct{ db *pgxpool.Pool }

func NewMissionRepo(db *pgxpool.Pool) repository.MissionRepository { return &MissionRepo{db: db} }

// dates come back as text so they keep their YYYY-MM-DD form
const missionCols = `id, name, description, country, city, cover_image_url,
	start_date::text, end_date::text, currency, exchange_rate::float8, timezone, language,
	average_temperature::float8, emergency_contact, emergency_phone, status::text,
	created_at, updated_at`

func scanMission(s scanner) (*models.Mission, error) {
	var m models.Mission
	err := s.Scan(&m.ID, &m.Name, &m.Description, &m.Country, &m.City, &m.CoverImageURL,
		&m.StartDate, &m.EndDate, &m.Currency, &m.ExchangeRate, &m.Timezone, &m.Language,
		&m.AverageTemperature, &m.EmergencyContact, &m.EmergencyPhone, &m.Status,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func missionFilter(status models.MissionStatus) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	if status != "" {
		args = append(args, string(status))
		clauses = append(clauses, "status::text = $"+itoa(len(args)))
	}
	return strings.Join(clauses, " AND "), args
}

// List returns missions by start date, latest first, plus the total count.
func (r *MissionRepo) List(ctx context.Context, status models.MissionStatus, limit, offset int) ([]models.Mission, int, error) {
	limit, offset = page(limit, offset)
	where, args := missionFilter(status)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM missions WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM missions
		WHERE %s
		ORDER BY start_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d
	`, missionCols, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Mission{}
	for rows.Next() {
		m, err := scanMission(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *m)
	}
	return out, total, rows.Err()
}

func (r *MissionRepo) Get(ctx context.Context, id string) (*models.Mission, error) {
	m, err := scanMission(r.db.QueryRow(ctx, `SELECT `+missionCols+` FROM missions WHERE id=$1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

// Create inserts m and fills in the generated id and timestamps.
func (r *MissionRepo) Create(ctx context.Context, m *models.Mission) error {
	got, err := scanMission(r.db.QueryRow(ctx, `
		INSERT INTO missions (name, description, country, city, cover_image_url,
			start_date, end_date, currency, exchange_rate, timezone, language,
			average_temperature, emergency_contact, emergency_phone, status)
		VALUES ($1,$2,$3,$4,$5,$6::date,$7::date,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING `+missionCols,
		m.Name, m.Description, m.Country, m.City, m.CoverImageURL,
		m.StartDate, m.EndDate, m.Currency, m.ExchangeRate, m.Timezone, m.Language,
		m.AverageTemperature, m.EmergencyContact, m.EmergencyPhone, string(m.Status)))
	if err != nil {
		return err
	}
	*m = *got
	return nil
}

func (r *MissionRepo) UpdateStatus(ctx context.Context, id string, status models.MissionStatus) (*models.Mission, error) {
	m, err := scanMission(r.db.QueryRow(ctx, `
		UPDATE missions
		SET status=$1, updated_at=now()
		WHERE id=$2
		RETURNING `+missionCols, string(status), id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *MissionRepo) Assign(ctx context.Context, userID, missionID string) (*models.UserMission, error) {
	var um models.UserMission
	err := r.db.QueryRow(ctx, `
		INSERT INTO user_missions (user_id, mission_id)
		VALUES ($1,$2)
		RETURNING id, user_id, mission_id, assigned_at`,
		userID, missionID).
		Scan(&um.ID, &um.UserID, &um.MissionID, &um.AssignedAt)
	if err != nil {
		return nil, err
	}
	return &um, nil
}

func (r *MissionRepo) Assignments(ctx context.Context, missionID string) ([]models.UserMission, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, mission_id, assigned_at
		FROM user_missions
		WHERE mission_id=$1
		ORDER BY assigned_at`, missionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.UserMission{}
	for rows.Next() {
		var um models.UserMission
		if err := rows.Scan(&um.ID, &um.UserID, &um.MissionID, &um.AssignedAt); err != nil {
			return nil, err
		}
		out = append(out, um)
	}
	return out, rows.Err()
}

// Unassign reports whether an assignment was removed.
func (r *MissionRepo) Unassign(ctx context.Context, userID, missionID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM user_missions WHERE user_id=$1 AND mission_id=$2`, userID, missionID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
