package storage

import (
	"context"

	"github.com/pribylovaa/go-filmorate/internal/models"
)

// PersonStorage — контракт репозитория пользователей и дружбы.
// Дружба симметрична: связь a-b видна с обеих сторон.
type PersonStorage interface {
	// CreatePerson назначает id и сохраняет пользователя вместе с друзьями.
	// Ошибки: ErrInvalidArgument при заданном id, ErrAlreadyExists при занятом логине.
	CreatePerson(ctx context.Context, person *models.Person) (*models.Person, error)
	// UpdatePerson перезаписывает профиль и множество друзей целиком.
	// Ошибки: ErrInvalidArgument без id, ErrPersonNotFound, ErrAlreadyExists.
	UpdatePerson(ctx context.Context, person *models.Person) (*models.Person, error)
	// UpdateProfile перезаписывает только профиль (логин, имя, email, день рождения);
	// связи дружбы остаются как есть. Ошибки те же, что у UpdatePerson.
	UpdateProfile(ctx context.Context, person *models.Person) (*models.Person, error)
	// PersonByID возвращает пользователя по id (ErrPersonNotFound при отсутствии).
	PersonByID(ctx context.Context, id int64) (*models.Person, error)
	// People возвращает всех пользователей по возрастанию id.
	People(ctx context.Context) ([]*models.Person, error)
	// SaveFriendship идемпотентно связывает a и b (ErrInvalidArgument при a == b).
	SaveFriendship(ctx context.Context, a, b int64) error
	// RemoveFriendship идемпотентно разрывает связь a-b.
	RemoveFriendship(ctx context.Context, a, b int64) error
	// Friends возвращает друзей пользователя по возрастанию id.
	Friends(ctx context.Context, id int64) ([]*models.Person, error)
	// CommonFriends возвращает общих друзей a и b по возрастанию id.
	CommonFriends(ctx context.Context, a, b int64) ([]*models.Person, error)
}
