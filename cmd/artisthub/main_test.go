package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisthub/internal/config"
	"artisthub/internal/store"
)

type failingSeedStore struct {
	count int
}

func (s failingSeedStore) Count(context.Context) (int, error) { return s.count, nil }

func (failingSeedStore) SaveAll(context.Context, []store.Artist) ([]store.Artist, error) {
	return nil, errors.New("insert failed")
}

func TestBootstrapDemoDataSeedsEmptyStore(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	seeded, err := bootstrapDemoData(ctx, mem)
	require.NoError(t, err)
	assert.Equal(t, len(demoArtists()), seeded)

	all, err := mem.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(demoArtists()))
	assert.Len(t, all[0].Songs, 3)

	seeded, err = bootstrapDemoData(ctx, mem)
	require.NoError(t, err)
	assert.Zero(t, seeded)
}

func TestBootstrapDemoDataSkipsPopulatedStore(t *testing.T) {
	seeded, err := bootstrapDemoData(context.Background(), failingSeedStore{count: 1})
	require.NoError(t, err)
	assert.Zero(t, seeded)
}

func TestBootstrapDemoDataReportsFailure(t *testing.T) {
	_, err := bootstrapDemoData(context.Background(), failingSeedStore{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert demo artists")
}

func TestBootstrapDemoDataFailureLeavesDatabaseEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	demo := demoArtists()
	insertErr := errors.New("connection reset")

	expectInserts := func(failAt int) {
		mock.ExpectBegin()
		for i, artist := range demo {
			q := mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO artists (name, genre, country)`)).
				WithArgs(artist.Name, artist.Genre, artist.Country)
			if i == failAt {
				q.WillReturnError(insertErr)
				mock.ExpectRollback()
				return
			}
			q.WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i + 1)))
			for j := range artist.Songs {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO songs (artist_id, title)`)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(i*10 + j + 1)))
			}
		}
		mock.ExpectCommit()
	}

	// First start: the third artist fails and nothing is committed.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM artists`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	expectInserts(2)

	seeded, err := bootstrapDemoData(context.Background(), store.New(db))
	require.ErrorIs(t, err, insertErr)
	assert.Zero(t, seeded)

	// Next start still sees an empty table and seeds everything.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM artists`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	expectInserts(-1)

	seeded, err = bootstrapDemoData(context.Background(), store.New(db))
	require.NoError(t, err)
	assert.Equal(t, len(demo), seeded)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenStoreMemory(t *testing.T) {
	s, closer, err := openStore(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory})
	require.NoError(t, err)
	require.NoError(t, closer.Close())

	count, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOpenStoreUnknownDriver(t *testing.T) {
	_, _, err := openStore(context.Background(), config.DatabaseConfig{Driver: "mongo"})
	require.Error(t, err)
}

func TestHTTPHandlerWiresMiddleware(t *testing.T) {
	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}}
	handler := newHTTPHandler(cfg, store.NewMemory())

	req := httptest.NewRequest(http.MethodPost, "/artist", strings.NewReader(`{"name":"Queen"}`))
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/artist/1", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/artist", nil)
	preflight.Header.Set("Origin", "http://localhost:5173")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, preflight)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
