package models

import "time"

// SectionType is the mission screen a card is shown on.
type SectionType string

const (
	SectionAnuga         SectionType = "anuga"
	SectionDestination   SectionType = "destination"
	SectionAccommodation SectionType = "accommodation"
	SectionTransport     SectionType = "transport"
	SectionActivity      SectionType = "activity"
	SectionCulture       SectionType = "culture"
)

func (s SectionType) Valid() bool {
	switch s {
	case SectionAnuga, SectionDestination, SectionAccommodation,
		SectionTransport, SectionActivity, SectionCulture:
		return true
	}
	return false
}

type CardType string

const (
	CardShared       CardType = "shared"
	CardUserSpecific CardType = "user_specific"
)

func (c CardType) Valid() bool {
	return c == CardShared || c == CardUserSpecific
}

type MissionCard struct {
	ID           string      `json:"id"`
	MissionID    string      `json:"mission_id"`
	SectionType  SectionType `json:"section_type"`
	CardType     CardType    `json:"card_type"`
	Title        string      `json:"title"`
	Description  *string     `json:"description,omitempty"`
	ImageURL     *string     `json:"image_url,omitempty"`
	LinkURL      *string     `json:"link_url,omitempty"`
	DisplayOrder int         `json:"display_order"`
	IsActive     bool        `json:"is_active"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    *time.Time  `json:"updated_at,omitempty"`
}

// UserSpecificCard overlays per-traveller details (booking, seat, ...) on a
// user_specific MissionCard.
type UserSpecificCard struct {
	ID               string         `json:"id"`
	CardID           string         `json:"card_id"`
	UserID           string         `json:"user_id"`
	BookingReference *string        `json:"booking_reference,omitempty"`
	CheckInCode      *string        `json:"check_in_code,omitempty"`
	SeatNumber       *string        `json:"seat_number,omitempty"`
	AdditionalInfo   map[string]any `json:"additional_info,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`
}
