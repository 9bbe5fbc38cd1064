package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/pribylovaa/go-filmorate/internal/friendship"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
)

// CreatePerson сохраняет нового пользователя и назначает ему id.
func (s *Storage) CreatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	const op = "storage/memory/people/CreatePerson"

	span := startSpan(ctx, "CreatePerson")
	defer span.End()

	if person.HasID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.logins[person.Login]; taken {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	if err := s.checkPeople(person.Friends); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stored := person.Clone()
	if err := stored.SetID(s.personSeq.Next()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.friends.Replace(stored.ID(), stored.Friends); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapGraphErr(err))
	}

	stored.Friends = nil
	s.people[stored.ID()] = stored
	s.logins[stored.Login] = stored.ID()

	return s.personView(stored), nil
}

// UpdatePerson перезаписывает профиль и множество друзей целиком.
func (s *Storage) UpdatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	const op = "storage/memory/people/UpdatePerson"

	span := startSpan(ctx, "UpdatePerson")
	defer span.End()

	if !person.HasID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.people[person.ID()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPersonNotFound)
	}

	if owner, taken := s.logins[person.Login]; taken && owner != person.ID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	if err := s.checkPeople(person.Friends); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.friends.Replace(person.ID(), person.Friends); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapGraphErr(err))
	}

	stored := person.Clone()
	stored.Friends = nil

	delete(s.logins, current.Login)
	s.logins[stored.Login] = stored.ID()
	s.people[stored.ID()] = stored

	return s.personView(stored), nil
}

// UpdateProfile перезаписывает профиль; связи дружбы не меняются.
func (s *Storage) UpdateProfile(ctx context.Context, person *models.Person) (*models.Person, error) {
	const op = "storage/memory/people/UpdateProfile"

	span := startSpan(ctx, "UpdateProfile")
	defer span.End()

	if !person.HasID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.people[person.ID()]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPersonNotFound)
	}

	if owner, taken := s.logins[person.Login]; taken && owner != person.ID() {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	stored := person.Clone()
	stored.Friends = nil

	delete(s.logins, current.Login)
	s.logins[stored.Login] = stored.ID()
	s.people[stored.ID()] = stored

	return s.personView(stored), nil
}

// PersonByID возвращает копию пользователя вместе с друзьями.
func (s *Storage) PersonByID(ctx context.Context, id int64) (*models.Person, error) {
	const op = "storage/memory/people/PersonByID"

	span := startSpan(ctx, "PersonByID")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPersonNotFound)
	}

	return s.personView(p), nil
}

// People возвращает всех пользователей по возрастанию id.
func (s *Storage) People(ctx context.Context) ([]*models.Person, error) {
	span := startSpan(ctx, "People")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.people))
	for id := range s.people {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return s.peopleByIDs(ids), nil
}

// SaveFriendship связывает a и b в обе стороны.
func (s *Storage) SaveFriendship(ctx context.Context, a, b int64) error {
	const op = "storage/memory/people/SaveFriendship"

	span := startSpan(ctx, "SaveFriendship")
	defer span.End()

	if a == b {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPeople(models.NewIDSet(a, b)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.friends.Add(a, b); err != nil {
		return fmt.Errorf("%s: %w", op, mapGraphErr(err))
	}

	return nil
}

// RemoveFriendship разрывает связь a-b в обе стороны.
func (s *Storage) RemoveFriendship(ctx context.Context, a, b int64) error {
	const op = "storage/memory/people/RemoveFriendship"

	span := startSpan(ctx, "RemoveFriendship")
	defer span.End()

	if a == b {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPeople(models.NewIDSet(a, b)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.friends.Remove(a, b)

	return nil
}

// Friends возвращает друзей пользователя по возрастанию id.
func (s *Storage) Friends(ctx context.Context, id int64) ([]*models.Person, error) {
	const op = "storage/memory/people/Friends"

	span := startSpan(ctx, "Friends")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.people[id]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrPersonNotFound)
	}

	return s.peopleByIDs(s.friends.FriendsOf(id).Sorted()), nil
}

// CommonFriends возвращает пересечение друзей a и b.
func (s *Storage) CommonFriends(ctx context.Context, a, b int64) ([]*models.Person, error) {
	const op = "storage/memory/people/CommonFriends"

	span := startSpan(ctx, "CommonFriends")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkPeople(models.NewIDSet(a, b)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.peopleByIDs(s.friends.Common(a, b)), nil
}

func (s *Storage) checkPeople(ids models.IDSet) error {
	for id := range ids {
		if _, ok := s.people[id]; !ok {
			return storage.ErrPersonNotFound
		}
	}

	return nil
}

// personView собирает копию пользователя с актуальным множеством друзей из графа.
func (s *Storage) personView(p *models.Person) *models.Person {
	out := p.Clone()
	out.Friends = s.friends.FriendsOf(p.ID())

	return out
}

func (s *Storage) peopleByIDs(ids []int64) []*models.Person {
	out := make([]*models.Person, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.people[id]; ok {
			out = append(out, s.personView(p))
		}
	}

	return out
}

func mapGraphErr(err error) error {
	if errors.Is(err, friendship.ErrSelfFriendship) {
		return fmt.Errorf("%w: %v", storage.ErrInvalidArgument, err)
	}

	return err
}
