package router

import (
	"context"
	"sync"
	"time"

	"fc-admin/internal/models"
)

type fakeAdmins map[string]*models.AdminUser

func (f fakeAdmins) GetByID(_ context.Context, id string) (*models.AdminUser, error) {
	return f[id], nil
}

type fakeUsers struct{ users []models.AppUser }

func (f *fakeUsers) List(_ context.Context, q string, limit, offset int) ([]models.AppUser, int, error) {
	return f.users, len(f.users), nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.AppUser, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

type listCall struct {
	status        models.MissionStatus
	limit, offset int
}

type fakeMissions struct {
	mu       sync.Mutex
	missions map[string]*models.Mission
	assigned map[string][]models.UserMission
	lastList listCall
	seq      int
}

func newFakeMissions() *fakeMissions {
	return &fakeMissions{missions: map[string]*models.Mission{}, assigned: map[string][]models.UserMission{}}
}

func (f *fakeMissions) List(_ context.Context, status models.MissionStatus, limit, offset int) ([]models.Mission, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = listCall{status, limit, offset}
	out := []models.Mission{}
	for _, m := range f.missions {
		if status == "" || m.Status == status {
			out = append(out, *m)
		}
	}
	return out, len(out), nil
}

func (f *fakeMissions) Get(_ context.Context, id string) (*models.Mission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.missions[id], nil
}

func (f *fakeMissions) Create(_ context.Context, m *models.Mission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	m.ID = "m" + string(rune('0'+f.seq))
	m.CreatedAt = time.Now()
	cp := *m
	f.missions[m.ID] = &cp
	return nil
}

func (f *fakeMissions) UpdateStatus(_ context.Context, id string, status models.MissionStatus) (*models.Mission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.missions[id]
	if !ok {
		return nil, nil
	}
	m.Status = status
	cp := *m
	return &cp, nil
}

func (f *fakeMissions) Assign(_ context.Context, userID, missionID string) (*models.UserMission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	um := models.UserMission{ID: "um-" + userID, UserID: userID, MissionID: missionID, AssignedAt: time.Now()}
	f.assigned[missionID] = append(f.assigned[missionID], um)
	return &um, nil
}

func (f *fakeMissions) Assignments(_ context.Context, missionID string) ([]models.UserMission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.UserMission{}, f.assigned[missionID]...), nil
}

func (f *fakeMissions) Unassign(_ context.Context, userID, missionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.assigned[missionID]
	for i, um := range list {
		if um.UserID == userID {
			f.assigned[missionID] = append(list[:i], list[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCards struct {
	cards     map[string]*models.MissionCard
	userCards []models.UserSpecificCard
}

func (f *fakeCards) ListByMission(_ context.Context, missionID string, section models.SectionType, activeOnly bool) ([]models.MissionCard, error) {
	out := []models.MissionCard{}
	for _, c := range f.cards {
		if c.MissionID != missionID || (section != "" && c.SectionType != section) || (activeOnly && !c.IsActive) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCards) Get(_ context.Context, id string) (*models.MissionCard, error) {
	return f.cards[id], nil
}

func (f *fakeCards) Create(_ context.Context, c *models.MissionCard) error {
	c.ID = "c" + c.Title
	cp := *c
	f.cards[c.ID] = &cp
	return nil
}

func (f *fakeCards) SetActive(_ context.Context, id string, active bool) (*models.MissionCard, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, nil
	}
	c.IsActive = active
	cp := *c
	return &cp, nil
}

func (f *fakeCards) UserCards(_ context.Context, cardID string) ([]models.UserSpecificCard, error) {
	out := []models.UserSpecificCard{}
	for _, c := range f.userCards {
		if c.CardID == cardID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCards) UserCardsForUser(_ context.Context, userID string) ([]models.UserSpecificCard, error) {
	out := []models.UserSpecificCard{}
	for _, c := range f.userCards {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
