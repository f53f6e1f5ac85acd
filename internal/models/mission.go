package models

import "time"

type MissionStatus string

const (
	MissionDraft     MissionStatus = "draft"
	MissionActive    MissionStatus = "active"
	MissionCompleted MissionStatus = "completed"
	MissionCancelled MissionStatus = "cancelled"
)

func (s MissionStatus) Valid() bool {
	switch s {
	case MissionDraft, MissionActive, MissionCompleted, MissionCancelled:
		return true
	}
	return false
}

type Mission struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        *string       `json:"description,omitempty"`
	Country            string        `json:"country"`
	City               string        `json:"city"`
	CoverImageURL      *string       `json:"cover_image_url,omitempty"`
	StartDate          string        `json:"start_date"` // YYYY-MM-DD
	EndDate            string        `json:"end_date"`
	Currency           *string       `json:"currency,omitempty"`
	ExchangeRate       *float64      `json:"exchange_rate,omitempty"`
	Timezone           *string       `json:"timezone,omitempty"`
	Language           *string       `json:"language,omitempty"`
	AverageTemperature *float64      `json:"average_temperature,omitempty"`
	EmergencyContact   *string       `json:"emergency_contact,omitempty"`
	EmergencyPhone     *string       `json:"emergency_phone,omitempty"`
	Status             MissionStatus `json:"status"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          *time.Time    `json:"updated_at,omitempty"`
}

// UserMission links an app user to a mission.
type UserMission struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MissionID  string    `json:"mission_id"`
	AssignedAt time.Time `json:"assigned_at"`
}
