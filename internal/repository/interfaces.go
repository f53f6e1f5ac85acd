package repository

import (
	"context"

	"fc-admin/internal/models"
)

// Get-style methods return nil, nil when the row does not exist.

type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*models.AdminUser, error)
}

type AppUserRepository interface {
	List(ctx context.Context, q string, limit, offset int) ([]models.AppUser, int, error)
	GetByID(ctx context.Context, id string) (*models.AppUser, error)
}

type MissionRepository interface {
	List(ctx context.Context, status models.MissionStatus, limit, offset int) ([]models.Mission, int, error)
	Get(ctx context.Context, id string) (*models.Mission, error)
	Create(ctx context.Context, m *models.Mission) error
	UpdateStatus(ctx context.Context, id string, status models.MissionStatus) (*models.Mission, error)

	Assign(ctx context.Context, userID, missionID string) (*models.UserMission, error)
	Assignments(ctx context.Context, missionID string) ([]models.UserMission, error)
	Unassign(ctx context.Context, userID, missionID string) (bool, error)
}

type CardRepository interface {
	ListByMission(ctx context.Context, missionID string, section models.SectionType, activeOnly bool) ([]models.MissionCard, error)
	Get(ctx context.Context, id string) (*models.MissionCard, error)
	Create(ctx context.Context, c *models.MissionCard) error
	SetActive(ctx context.Context, id string, active bool) (*models.MissionCard, error)

	UserCards(ctx context.Context, cardID string) ([]models.UserSpecificCard, error)
	UserCardsForUser(ctx context.Context, userID string) ([]models.UserSpecificCard, error)
}
