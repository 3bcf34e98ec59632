package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hackflow/hackflow-api/internal/models"
)

// MemoryStore backs all three repositories in offline mode and in tests.
// Data lives only as long as the process.
type MemoryStore struct {
	mu       sync.RWMutex
	ideas    []models.Idea
	messages []models.TeamMessage
	profiles []models.TeamProfile
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: func() time.Time { return time.Now().UTC() }}
}

// Ideas, Messages and Profiles expose the store through the repository interfaces
func (s *MemoryStore) Ideas() IdeaRepository { return memoryIdeas{s} }
func (s *MemoryStore) Messages() MessageRepository { return memoryMessages{s} }
func (s *MemoryStore) Profiles() TeamProfileRepository { return memoryProfiles{s} }

type memoryIdeas struct{ s *MemoryStore }

func (r memoryIdeas) Create(ctx context.Context, idea *models.Idea) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idea.ID = uuid.NewString()
	idea.CreatedAt = r.s.now()
	r.s.ideas = append(r.s.ideas, *idea)
	return nil
}

func (r memoryIdeas) ListByUser(ctx context.Context, userID string) ([]models.Idea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Idea{}
	for i := len(r.s.ideas) - 1; i >= 0; i-- {
		if r.s.ideas[i].UserID == userID {
			out = append(out, r.s.ideas[i])
		}
	}
	return out, nil
}

type memoryMessages struct{ s *MemoryStore }

func (r memoryMessages) Create(ctx context.Context, msg *models.TeamMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = r.s.now()
	}
	for _, existing := range r.s.messages {
		if existing.ID == msg.ID {
			return nil
		}
	}
	r.s.messages = append(r.s.messages, *msg)
	return nil
}

func (r memoryMessages) ListByTeam(ctx context.Context, teamID string) ([]models.TeamMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.TeamMessage{}
	for _, m := range r.s.messages {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > maxListRows {
		out = out[len(out)-maxListRows:]
	}
	return out, nil
}

type memoryProfiles struct{ s *MemoryStore }

func (r memoryProfiles) Create(ctx context.Context, p *models.TeamProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = r.s.now()
	p.TechStack = nonNil(p.TechStack)
	p.Skills = nonNil(p.Skills)
	p.Availability = nonNil(p.Availability)
	p.LookingFor = nonNil(p.LookingFor)
	r.s.profiles = append(r.s.profiles, *p)
	return nil
}

func (r memoryProfiles) ListByTeam(ctx context.Context, teamID string) ([]models.TeamProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.TeamProfile{}
	for _, p := range r.s.profiles {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}
