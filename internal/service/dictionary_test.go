package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/pribylovaa/go-filmorate/internal/storage"
	"github.com/pribylovaa/go-filmorate/mocks"
	"github.com/stretchr/testify/require"
)

var testGenres = []models.Genre{{ID: 1, Name: "Комедия"}, {ID: 2, Name: "Драма"}}

func newDictionaryWithMocks(t *testing.T) (*DictionaryService, *mocks.MockDictionaryStorage, *mocks.MockDictionaryCache, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	md := mocks.NewMockDictionaryStorage(ctrl)
	mc := mocks.NewMockDictionaryCache(ctrl)
	s := NewDictionaryService(md)
	s.SetCache(mc)
	return s, md, mc, ctrl
}

// Без кэша сервис читает хранилище напрямую.
func TestDictionaryService_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	md := mocks.NewMockDictionaryStorage(ctrl)
	md.EXPECT().Ratings(gomock.Any()).Return([]models.Rating{{ID: 1, Name: "G"}}, nil)

	got, err := NewDictionaryService(md).Ratings(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.Rating{{ID: 1, Name: "G"}}, got)
}

// Попадание в кэш: хранилище не вызывается.
func TestDictionaryService_Genres_CacheHit(t *testing.T) {
	s, _, mc, ctrl := newDictionaryWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().Genres(gomock.Any()).Return(testGenres, true, nil)

	got, err := s.Genres(context.Background())
	require.NoError(t, err)
	require.Equal(t, testGenres, got)
}

// Промах: чтение из хранилища и запись в кэш.
func TestDictionaryService_Genres_CacheMiss(t *testing.T) {
	s, md, mc, ctrl := newDictionaryWithMocks(t)
	defer ctrl.Finish()

	gomock.InOrder(
		mc.EXPECT().Genres(gomock.Any()).Return(nil, false, nil),
		md.EXPECT().Genres(gomock.Any()).Return(testGenres, nil),
		mc.EXPECT().SetGenres(gomock.Any(), testGenres).Return(nil),
	)

	got, err := s.Genres(context.Background())
	require.NoError(t, err)
	require.Equal(t, testGenres, got)
}

// Ошибки кэша не прерывают запрос.
func TestDictionaryService_Ratings_CacheErrorsIgnored(t *testing.T) {
	s, md, mc, ctrl := newDictionaryWithMocks(t)
	defer ctrl.Finish()

	want := []models.Rating{{ID: 1, Name: "G"}}
	mc.EXPECT().Ratings(gomock.Any()).Return(nil, false, errors.New("redis down"))
	md.EXPECT().Ratings(gomock.Any()).Return(want, nil)
	mc.EXPECT().SetRatings(gomock.Any(), want).Return(errors.New("redis down"))

	got, err := s.Ratings(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDictionaryService_GenreByID_FromCache(t *testing.T) {
	s, _, mc, ctrl := newDictionaryWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().Genres(gomock.Any()).Return(testGenres, true, nil)

	got, err := s.GenreByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, models.Genre{ID: 2, Name: "Драма"}, got)
}

// Отсутствие в кэше не означает отсутствия: проверяет хранилище.
func TestDictionaryService_GenreByID_NotFound(t *testing.T) {
	s, md, mc, ctrl := newDictionaryWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().Genres(gomock.Any()).Return(testGenres, true, nil)
	md.EXPECT().GenreByID(gomock.Any(), int64(77)).Return(models.Genre{}, storage.ErrGenreNotFound)

	_, err := s.GenreByID(context.Background(), 77)
	require.ErrorIs(t, err, ErrGenreNotFound)
}

func TestDictionaryService_RatingByID_NotFound(t *testing.T) {
	s, md, mc, ctrl := newDictionaryWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().Ratings(gomock.Any()).Return(nil, false, nil)
	md.EXPECT().RatingByID(gomock.Any(), int64(9)).Return(models.Rating{}, storage.ErrRatingNotFound)

	_, err := s.RatingByID(context.Background(), 9)
	require.ErrorIs(t, err, ErrRatingNotFound)
}
