package postgres

import (
	"context"
	"strings"

	"fc-admin/internal/models"
	"fc-admin/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CardRepo struct{ db *pgxpool.Pool }

func NewCardRepo(db *pgxpool.Pool) repository.CardRepository { return &CardRepo{db: db} }

const cardCols = `id, mission_id, section_type::text, card_type::text, title, description,
	image_url, link_url, display_order, is_active, created_at, updated_at`

const userCardCols = `id, card_id, user_id, booking_reference, check_in_code, seat_number,
	additional_info, created_at, updated_at`

func scanCard(s scanner) (*models.MissionCard, error) {
	var c models.MissionCard
	err := s.Scan(&c.ID, &c.MissionID, &c.SectionType, &c.CardType, &c.Title, &c.Description,
		&c.ImageURL, &c.LinkURL, &c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanUserCard(s scanner) (*models.UserSpecificCard, error) {
	var c models.UserSpecificCard
	err := s.Scan(&c.ID, &c.CardID, &c.UserID, &c.BookingReference, &c.CheckInCode, &c.SeatNumber,
		&c.AdditionalInfo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func cardFilter(missionID string, section models.SectionType, activeOnly bool) (string, []any) {
	args := []any{missionID}
	clauses := []string{"mission_id = $1"}
	if section != "" {
		args = append(args, string(section))
		clauses = append(clauses, "section_type::text = $"+itoa(len(args)))
	}
	if activeOnly {
		clauses = append(clauses, "is_active")
	}
	return strings.Join(clauses, " AND "), args
}

// ListByMission returns cards in display order within each section.
func (r *CardRepo) ListByMission(ctx context.Context, missionID string, section models.SectionType, activeOnly bool) ([]models.MissionCard, error) {
	where, args := cardFilter(missionID, section, activeOnly)
	rows, err := r.db.Query(ctx, `
		SELECT `+cardCols+`
		FROM mission_cards
		WHERE `+where+`
		ORDER BY section_type, display_order, created_at`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MissionCard{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CardRepo) Get(ctx context.Context, id string) (*models.MissionCard, error) {
	c, err := scanCard(r.db.QueryRow(ctx, `SELECT `+cardCols+` FROM mission_cards WHERE id=$1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *CardRepo) Create(ctx context.Context, c *models.MissionCard) error {
	got, err := scanCard(r.db.QueryRow(ctx, `
		INSERT INTO mission_cards (mission_id, section_type, card_type, title, description,
			image_url, link_url, display_order, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+cardCols,
		c.MissionID, string(c.SectionType), string(c.CardType), c.Title, c.Description,
		c.ImageURL, c.LinkURL, c.DisplayOrder, c.IsActive))
	if err != nil {
		return err
	}
	*c = *got
	return nil
}

func (r *CardRepo) SetActive(ctx context.Context, id string, active bool) (*models.MissionCard, error) {
	c, err := scanCard(r.db.QueryRow(ctx, `
		UPDATE mission_cards
		SET is_active=$1, updated_at=now()
		WHERE id=$2
		RETURNING `+cardCols, active, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *CardRepo) UserCards(ctx context.Context, cardID string) ([]models.UserSpecificCard, error) {
	return r.listUserCards(ctx, "card_id", cardID)
}

func (r *CardRepo) UserCardsForUser(ctx context.Context, userID string) ([]models.UserSpecificCard, error) {
	return r.listUserCards(ctx, "user_id", userID)
}

// col is one of two fixed column names, never caller input.
func (r *CardRepo) listUserCards(ctx context.Context, col, id string) ([]models.UserSpecificCard, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+userCardCols+`
		FROM user_specific_cards
		WHERE `+col+`=$1
		ORDER BY created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.UserSpecificCard{}
	for rows.Next() {
		c, err := scanUserCard(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}
