package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
)

// personColumns — единый список колонок пользователя (таблица people под алиасом p).
const personColumns = `
p.id, p.login, p.name, p.email, p.birthday
`

func scanPerson(row pgx.Row) (*models.Person, error) {
	var person models.Person
	var id int64

	if err := row.Scan(
		&id,
		&person.Login,
		&person.Name,
		&person.Email,
		&person.Birthday,
	); err != nil {
		return nil, err
	}

	person.Identity = models.IdentityOf(id)
	person.Birthday = person.Birthday.UTC()
	person.Friends = make(models.IDSet)

	return &person, nil
}

func collectPeople(rows pgx.Rows) ([]*models.Person, error) {
	defer rows.Close()

	var people []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// loadFriends догружает множества друзей для набора пользователей.
func loadFriends(ctx context.Context, q querier, people []*models.Person) error {
	if len(people) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Person, len(people))
	ids := make([]int64, 0, len(people))
	for _, p := range people {
		byID[p.ID()] = p
		ids = append(ids, p.ID())
	}

	rows, err := q.Query(ctx, `SELECT person_id, friend_id FROM friendships WHERE person_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var personID, friendID int64
		if err := rows.Scan(&personID, &friendID); err != nil {
			return err
		}
		byID[personID].Friends.Add(friendID)
	}

	return rows.Err()
}

func queryPeople(ctx context.Context, q querier, sql string, args ...any) ([]*models.Person, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	people, err := collectPeople(rows)
	if err != nil {
		return nil, err
	}

	if err := loadFriends(ctx, q, people); err != nil {
		return nil, err
	}

	return people, nil
}

func personByID(ctx context.Context, q querier, id int64) (*models.Person, error) {
	person, err := scanPerson(q.QueryRow(ctx, `SELECT `+personColumns+` FROM people p WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrPersonNotFound
		}

		return nil, err
	}

	if err := loadFriends(ctx, q, []*models.Person{person}); err != nil {
		return nil, err
	}

	return person, nil
}

func checkPeople(ctx context.Context, q querier, ids ...int64) error {
	for _, id := range ids {
		ok, err := exists(ctx, q, "people", id)
		if err != nil {
			return err
		}
		if !ok {
			return storage.ErrPersonNotFound
		}
	}

	return nil
}

// replaceFriends удаляет все связи пользователя и вставляет заново по две строки на связь.
func replaceFriends(ctx context.Context, q querier, id int64, friends models.IDSet) error {
	if friends.Has(id) {
		return storage.ErrInvalidArgument
	}

	if _, err := q.Exec(ctx, `DELETE FROM friendships WHERE person_id = $1 OR friend_id = $1`, id); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, friendID := range friends.Sorted() {
		batch.Queue(`INSERT INTO friendships (person_id, friend_id) VALUES ($1, $2), ($2, $1)`, id, friendID)
	}

	return execBatch(ctx, q, batch)
}

// CreatePerson вставляет пользователя и его связи дружбы в одной транзакции.
// Ошибки: storage.ErrInvalidArgument при заданном id, storage.ErrAlreadyExists при занятом логине.
func (s *Storage) CreatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	const op = "storage/postgres/people/CreatePerson"

	if person.HasID() {
		return nil, wrapErr(op, storage.ErrInvalidArgument)
	}

	var created *models.Person
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `
		INSERT INTO people (login, name, email, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
			person.Login,
			person.Name,
			person.Email,
			dateOnly(person.Birthday),
		).Scan(&id)
		if err != nil {
			return err
		}

		if err := replaceFriends(ctx, tx, id, person.Friends); err != nil {
			return err
		}

		created, err = personByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return created, nil
}

// UpdatePerson перезаписывает профиль и заменяет связи дружбы целиком.
// Ошибки: storage.ErrInvalidArgument, storage.ErrPersonNotFound, storage.ErrAlreadyExists.
func (s *Storage) UpdatePerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	const op = "storage/postgres/people/UpdatePerson"

	if !person.HasID() {
		return nil, wrapErr(op, storage.ErrInvalidArgument)
	}

	var updated *models.Person
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := updatePersonRow(ctx, tx, person); err != nil {
			return err
		}

		if err := replaceFriends(ctx, tx, person.ID(), person.Friends); err != nil {
			return err
		}

		var err error
		updated, err = personByID(ctx, tx, person.ID())
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return updated, nil
}

// UpdateProfile перезаписывает только строку people; таблица friendships не затрагивается.
// Ошибки: storage.ErrInvalidArgument, storage.ErrPersonNotFound, storage.ErrAlreadyExists.
func (s *Storage) UpdateProfile(ctx context.Context, person *models.Person) (*models.Person, error) {
	const op = "storage/postgres/people/UpdateProfile"

	if !person.HasID() {
		return nil, wrapErr(op, storage.ErrInvalidArgument)
	}

	var updated *models.Person
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		if err := updatePersonRow(ctx, tx, person); err != nil {
			return err
		}

		var err error
		updated, err = personByID(ctx, tx, person.ID())
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return updated, nil
}

// updatePersonRow перезаписывает строку пользователя.
func updatePersonRow(ctx context.Context, q querier, person *models.Person) error {
	tag, err := q.Exec(ctx, `
		UPDATE people
		SET login = $2, name = $3, email = $4, birthday = $5
		WHERE id = $1`,
		person.ID(),
		person.Login,
		person.Name,
		person.Email,
		dateOnly(person.Birthday),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return storage.ErrPersonNotFound
	}

	return nil
}

// PersonByID возвращает пользователя с множеством друзей.
func (s *Storage) PersonByID(ctx context.Context, id int64) (*models.Person, error) {
	const op = "storage/postgres/people/PersonByID"

	person, err := personByID(ctx, s.db, id)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return person, nil
}

// People возвращает всех пользователей по возрастанию id.
func (s *Storage) People(ctx context.Context) ([]*models.Person, error) {
	const op = "storage/postgres/people/People"

	people, err := queryPeople(ctx, s.db, `SELECT `+personColumns+` FROM people p ORDER BY p.id`)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return people, nil
}

// SaveFriendship вставляет обе строки связи; существующие строки не дублируются.
func (s *Storage) SaveFriendship(ctx context.Context, a, b int64) error {
	const op = "storage/postgres/people/SaveFriendship"

	if a == b {
		return wrapErr(op, storage.ErrInvalidArgument)
	}

	if err := checkPeople(ctx, s.db, a, b); err != nil {
		return wrapErr(op, err)
	}

	_, err := s.db.Exec(ctx, `
	INSERT INTO friendships (person_id, friend_id) VALUES ($1, $2), ($2, $1)
	ON CONFLICT (person_id, friend_id) DO NOTHING`, a, b)
	if err != nil {
		return wrapErr(op, err)
	}

	return nil
}

// RemoveFriendship удаляет обе строки связи.
func (s *Storage) RemoveFriendship(ctx context.Context, a, b int64) error {
	const op = "storage/postgres/people/RemoveFriendship"

	if a == b {
		return wrapErr(op, storage.ErrInvalidArgument)
	}

	if err := checkPeople(ctx, s.db, a, b); err != nil {
		return wrapErr(op, err)
	}

	_, err := s.db.Exec(ctx, `
	DELETE FROM friendships
	WHERE (person_id = $1 AND friend_id = $2) OR (person_id = $2 AND friend_id = $1)`, a, b)
	if err != nil {
		return wrapErr(op, err)
	}

	return nil
}

// Friends возвращает друзей пользователя по возрастанию id.
func (s *Storage) Friends(ctx context.Context, id int64) ([]*models.Person, error) {
	const op = "storage/postgres/people/Friends"

	if err := checkPeople(ctx, s.db, id); err != nil {
		return nil, wrapErr(op, err)
	}

	people, err := queryPeople(ctx, s.db, `
	SELECT `+personColumns+`
	FROM people p
	JOIN friendships f ON f.friend_id = p.id
	WHERE f.person_id = $1
	ORDER BY p.id`, id)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return people, nil
}

// CommonFriends возвращает пересечение друзей a и b.
func (s *Storage) CommonFriends(ctx context.Context, a, b int64) ([]*models.Person, error) {
	const op = "storage/postgres/people/CommonFriends"

	if err := checkPeople(ctx, s.db, a, b); err != nil {
		return nil, wrapErr(op, err)
	}

	people, err := queryPeople(ctx, s.db, `
	SELECT `+personColumns+`
	FROM people p
	JOIN friendships fa ON fa.friend_id = p.id AND fa.person_id = $1
	JOIN friendships fb ON fb.friend_id = p.id AND fb.person_id = $2
	ORDER BY p.id`, a, b)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	return people, nil
}
