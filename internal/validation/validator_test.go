package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Login       string    `validate:"required,login"`
	Name        string    `validate:"notblank"`
	Email       string    `validate:"required,email"`
	Description string    `validate:"max=200"`
	Birthday    time.Time `validate:"notfuture"`
	ReleaseDate time.Time `validate:"cinemaepoch"`
	Duration    int32     `validate:"gt=0"`
}

func valid() sample {
	return sample{
		Login:       "dolore",
		Name:        "Nick",
		Email:       "mail@mail.ru",
		Description: strings.Repeat("a", 200),
		Birthday:    time.Date(1946, 8, 20, 0, 0, 0, 0, time.UTC),
		ReleaseDate: CinemaEpoch,
		Duration:    100,
	}
}

func TestStruct_OK(t *testing.T) {
	require.NoError(t, Struct(valid()))
}

func TestStruct_Failures(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*sample)
		field string
		tag   string
	}{
		{"login with space", func(s *sample) { s.Login = "dolore ullamco" }, "Login", "login"},
		{"login too long", func(s *sample) { s.Login = strings.Repeat("a", 21) }, "Login", "login"},
		{"login trailing dot", func(s *sample) { s.Login = "abc." }, "Login", "login"},
		{"login empty", func(s *sample) { s.Login = "" }, "Login", "required"},
		{"blank name", func(s *sample) { s.Name = "   " }, "Name", "notblank"},
		{"bad email", func(s *sample) { s.Email = "mail.ru" }, "Email", "email"},
		{"description 201", func(s *sample) { s.Description = strings.Repeat("я", 201) }, "Description", "max"},
		{"birthday in future", func(s *sample) { s.Birthday = time.Now().Add(48 * time.Hour) }, "Birthday", "notfuture"},
		{"release before epoch", func(s *sample) { s.ReleaseDate = CinemaEpoch.AddDate(0, 0, -1) }, "ReleaseDate", "cinemaepoch"},
		{"zero duration", func(s *sample) { s.Duration = 0 }, "Duration", "gt"},
		{"negative duration", func(s *sample) { s.Duration = -200 }, "Duration", "gt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mut(&s)

			err := Struct(s)
			require.Error(t, err)

			var verr *Error
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			require.Equal(t, tc.field, verr.Fields[0].Field)
			require.Equal(t, tc.tag, verr.Fields[0].Tag)
			require.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestGet_Singleton(t *testing.T) {
	require.Same(t, Get(), Get())
}
