package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/pribylovaa/go-filmorate/pkg/log"
)

// PersonInput — входные данные для создания и обновления пользователя.
// Пустое имя заменяется логином.
type PersonInput struct {
	ID       int64
	Login    string `validate:"required,login"`
	Name     string
	Email    string    `validate:"required,email"`
	Birthday time.Time `validate:"required,notfuture"`
}

// PersonService — операции над пользователями и дружбой.
type PersonService struct {
	people storage.PersonStorage
}

// NewPersonService создаёт сервис пользователей.
func NewPersonService(people storage.PersonStorage) *PersonService {
	return &PersonService{people: people}
}

func buildPerson(in PersonInput) *models.Person {
	p := &models.Person{
		Login:    in.Login,
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Birthday: in.Birthday,
	}
	p.Name = p.DisplayName()

	return p
}

// Create создаёт пользователя.
//
// Валидация:
//   - ID должен быть пустым;
//   - логин без пробелов, email корректен, дата рождения не в будущем.
//
// Ошибки: ErrInvalidArgument, ErrAlreadyExists при занятом логине.
func (s *PersonService) Create(ctx context.Context, in PersonInput) (*models.Person, error) {
	const op = "service/people/Create"

	lg := log.From(ctx).With("op", op, "login", in.Login)

	if in.ID != 0 {
		lg.Warn("invalid argument: id must be empty on create", "person_id", in.ID)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := checkInput(lg, op, in); err != nil {
		return nil, err
	}

	created, err := s.people.CreatePerson(ctx, buildPerson(in))
	if err != nil {
		return nil, translate(lg, op, err)
	}

	lg.Info("person created", "person_id", created.ID())

	return created, nil
}

// Update перезаписывает профиль пользователя; друзья не затрагиваются,
// в том числе добавленные параллельно.
//
// Ошибки: ErrInvalidArgument без id, ErrPersonNotFound, ErrAlreadyExists.
func (s *PersonService) Update(ctx context.Context, in PersonInput) (*models.Person, error) {
	const op = "service/people/Update"

	lg := log.From(ctx).With("op", op, "person_id", in.ID)

	if in.ID <= 0 {
		lg.Warn("invalid argument: id is required on update")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := checkInput(lg, op, in); err != nil {
		return nil, err
	}

	person := buildPerson(in)
	if err := person.SetID(in.ID); err != nil {
		return nil, translate(lg, op, err)
	}

	updated, err := s.people.UpdateProfile(ctx, person)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return updated, nil
}

// PersonByID возвращает пользователя или ErrPersonNotFound.
func (s *PersonService) PersonByID(ctx context.Context, id int64) (*models.Person, error) {
	const op = "service/people/PersonByID"

	lg := log.From(ctx).With("op", op, "person_id", id)

	p, err := s.people.PersonByID(ctx, id)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return p, nil
}

// People возвращает всех пользователей по возрастанию id.
func (s *PersonService) People(ctx context.Context) ([]*models.Person, error) {
	const op = "service/people/People"

	lg := log.From(ctx).With("op", op)

	people, err := s.people.People(ctx)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return people, nil
}

// checkPair отклоняет петлю и проверяет существование обоих пользователей.
func (s *PersonService) checkPair(ctx context.Context, op string, a, b int64) error {
	lg := log.From(ctx).With("op", op, "person_id", a, "friend_id", b)

	if a == b {
		lg.Warn("invalid argument: self friendship")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	for _, id := range []int64{a, b} {
		if _, err := s.people.PersonByID(ctx, id); err != nil {
			return translate(lg, op, err)
		}
	}

	return nil
}

// AddFriend связывает a и b дружбой в обе стороны. Повторный вызов ничего не меняет.
func (s *PersonService) AddFriend(ctx context.Context, a, b int64) error {
	const op = "service/people/AddFriend"

	if err := s.checkPair(ctx, op, a, b); err != nil {
		return err
	}

	if err := s.people.SaveFriendship(ctx, a, b); err != nil {
		return translate(log.From(ctx).With("op", op, "person_id", a, "friend_id", b), op, err)
	}

	return nil
}

// DeleteFriend разрывает дружбу a-b с обеих сторон.
func (s *PersonService) DeleteFriend(ctx context.Context, a, b int64) error {
	const op = "service/people/DeleteFriend"

	if err := s.checkPair(ctx, op, a, b); err != nil {
		return err
	}

	if err := s.people.RemoveFriendship(ctx, a, b); err != nil {
		return translate(log.From(ctx).With("op", op, "person_id", a, "friend_id", b), op, err)
	}

	return nil
}

// Friends возвращает друзей пользователя по возрастанию id.
func (s *PersonService) Friends(ctx context.Context, id int64) ([]*models.Person, error) {
	const op = "service/people/Friends"

	lg := log.From(ctx).With("op", op, "person_id", id)

	friends, err := s.people.Friends(ctx, id)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return friends, nil
}

// CommonFriends возвращает пересечение друзей a и b.
func (s *PersonService) CommonFriends(ctx context.Context, a, b int64) ([]*models.Person, error) {
	const op = "service/people/CommonFriends"

	lg := log.From(ctx).With("op", op, "person_id", a, "other_id", b)

	common, err := s.people.CommonFriends(ctx, a, b)
	if err != nil {
		return nil, translate(lg, op, err)
	}

	return common, nil
}
