package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Song is a track owned by a single artist.
type Song struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Artist is the persisted artist record together with its songs.
type Artist struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Genre   string `json:"genre,omitempty"`
	Country string `json:"country,omitempty"`
	Songs   []Song `json:"songs"`
}

// Store provides artist persistence backed by Postgres.
type Store struct {
	db *sql.DB
}

// New sets up a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Save inserts the artist and its songs, returning the record with the
// database-assigned ids. Any id already set on the input is ignored.
func (s *Store) Save(ctx context.Context, artist Artist) (Artist, error) {
	saved, err := s.SaveAll(ctx, []Artist{artist})
	if err != nil {
		return Artist{}, err
	}
	return saved[0], nil
}

// SaveAll inserts every artist with its songs in a single transaction. Either
// all of them are stored or none are.
func (s *Store) SaveAll(ctx context.Context, artists []Artist) ([]Artist, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	saved := make([]Artist, 0, len(artists))
	for _, artist := range artists {
		inserted, err := insertArtist(ctx, tx, artist)
		if err != nil {
			return nil, err
		}
		saved = append(saved, inserted)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return saved, nil
}

func insertArtist(ctx context.Context, tx *sql.Tx, artist Artist) (Artist, error) {
	err := tx.QueryRowContext(ctx, `
		INSERT INTO artists (name, genre, country)
		VALUES ($1, $2, $3)
		RETURNING id
	`, artist.Name, artist.Genre, artist.Country).Scan(&artist.ID)
	if err != nil {
		return Artist{}, fmt.Errorf("insert artist %q: %w", artist.Name, err)
	}

	songs := make([]Song, 0, len(artist.Songs))
	for _, song := range artist.Songs {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO songs (artist_id, title)
			VALUES ($1, $2)
			RETURNING id
		`, artist.ID, song.Title).Scan(&song.ID); err != nil {
			return Artist{}, fmt.Errorf("insert song %q: %w", song.Title, err)
		}
		songs = append(songs, song)
	}

	artist.Songs = songs
	return artist, nil
}

// FindAll returns every artist ordered by id, each with its songs.
func (s *Store) FindAll(ctx context.Context) ([]Artist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, genre, country
		FROM artists
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query artists: %w", err)
	}
	defer rows.Close()

	artists := []Artist{}
	index := make(map[int64]int)
	for rows.Next() {
		artist := Artist{Songs: []Song{}}
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Genre, &artist.Country); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		index[artist.ID] = len(artists)
		artists = append(artists, artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	if len(artists) == 0 {
		return artists, nil
	}

	songRows, err := s.db.QueryContext(ctx, `
		SELECT id, artist_id, title
		FROM songs
		ORDER BY artist_id ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer songRows.Close()

	for songRows.Next() {
		var (
			song     Song
			artistID int64
		)
		if err := songRows.Scan(&song.ID, &artistID, &song.Title); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		// Songs inserted after the artist query are skipped.
		if i, ok := index[artistID]; ok {
			artists[i].Songs = append(artists[i].Songs, song)
		}
	}
	if err := songRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate songs: %w", err)
	}

	return artists, nil
}

// FindByID looks up one artist. The boolean is false when no artist has the id.
func (s *Store) FindByID(ctx context.Context, id int64) (Artist, bool, error) {
	artist := Artist{Songs: []Song{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, genre, country
		FROM artists
		WHERE id = $1
	`, id).Scan(&artist.ID, &artist.Name, &artist.Genre, &artist.Country)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, false, nil
		}
		return Artist{}, false, fmt.Errorf("get artist: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title
		FROM songs
		WHERE artist_id = $1
		ORDER BY id ASC
	`, id)
	if err != nil {
		return Artist{}, false, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var song Song
		if err := rows.Scan(&song.ID, &song.Title); err != nil {
			return Artist{}, false, fmt.Errorf("scan song: %w", err)
		}
		artist.Songs = append(artist.Songs, song)
	}
	if err := rows.Err(); err != nil {
		return Artist{}, false, fmt.Errorf("iterate songs: %w", err)
	}

	return artist, true, nil
}

// Count returns the number of stored artists.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM artists`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count artists: %w", err)
	}
	return count, nil
}
