// Package memory implements the Record Store in process memory for local
// development and tests. Data does not survive a restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"figures/internal/domain/entity"
	domainerrors "figures/internal/domain/errors"
	"figures/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store holds both collections behind one lock, mirroring single-document atomicity.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*entity.Profile
	users    map[string]*entity.User // keyed by external subject ID
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		profiles: make(map[string]*entity.Profile),
		users:    make(map[string]*entity.User),
		now:      time.Now,
	}
}

// newID issues IDs in the same 24-hex form the Mongo backend uses.
func newID() string {
	return primitive.NewObjectID().Hex()
}

// ProfileRepository exposes the profile side of the store.
func (s *Store) ProfileRepository() repository.ProfileRepository {
	return &profileRepository{store: s}
}

// UserRepository exposes the user side of the store.
func (s *Store) UserRepository() repository.UserRepository {
	return &userRepository{store: s}
}

// DeleteProfile removes a profile, leaving any favorites that reference it dangling.
func (s *Store) DeleteProfile(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[id]; !ok {
		return false
	}
	delete(s.profiles, id)

	return true
}

type profileRepository struct {
	store *Store
}

func (r *profileRepository) List(_ context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	profiles := make([]*entity.Profile, 0, len(r.store.profiles))
	for _, p := range r.store.profiles {
		if filter.Matches(p) {
			profiles = append(profiles, cloneProfile(p))
		}
	}

	slices.SortFunc(profiles, func(a, b *entity.Profile) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.ID, a.ID)
	})

	return profiles, nil
}

func (r *profileRepository) FindByID(_ context.Context, id string) (*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(p), nil
}

func (r *profileRepository) FindByIDs(_ context.Context, ids []string) ([]*entity.Profile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	profiles := make([]*entity.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.store.profiles[id]; ok {
			profiles = append(profiles, cloneProfile(p))
		}
	}

	return profiles, nil
}

func (r *profileRepository) Create(_ context.Context, profile *entity.Profile) error {
	if err := profile.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	profile.ID = newID()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = r.store.now().UTC()
	}
	if profile.Achievements == nil {
		profile.Achievements = []string{}
	}
	r.store.profiles[profile.ID] = cloneProfile(profile)

	return nil
}

type userRepository struct {
	store *Store
}

func (r *userRepository) FindBySubjectID(_ context.Context, subjectID string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[subjectID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(u), nil
}

func (r *userRepository) FindOrCreate(_ context.Context, subjectID, email, displayName string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if u, ok := r.store.users[subjectID]; ok {
		return cloneUser(u), nil
	}

	u := &entity.User{
		ID:                newID(),
		ExternalSubjectID: subjectID,
		Email:             email,
		DisplayName:       displayName,
		Favorites:         []string{},
		CreatedAt:         r.store.now().UTC(),
	}
	r.store.users[subjectID] = u

	return cloneUser(u), nil
}

func (r *userRepository) AddFavorite(_ context.Context, subjectID, profileID string) error {
	return r.mutate(subjectID, func(u *entity.User) { u.AddFavorite(profileID) })
}

func (r *userRepository) RemoveFavorite(_ context.Context, subjectID, profileID string) error {
	return r.mutate(subjectID, func(u *entity.User) { u.RemoveFavorite(profileID) })
}

func (r *userRepository) mutate(subjectID string, fn func(*entity.User)) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[subjectID]
	if !ok {
		return repository.ErrUserNotFound
	}
	fn(u)

	return nil
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	c := *p
	c.Achievements = slices.Clone(p.Achievements)

	return &c
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.Favorites = slices.Clone(u.Favorites)
	if c.Favorites == nil {
		c.Favorites = []string{}
	}

	return &c
}
