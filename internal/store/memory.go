package store

import (
	"context"
	"sort"
	"sync"
)

// Memory keeps artists in process memory. It is used for local runs without
// Postgres and as the store behind handler tests.
type Memory struct {
	mu           sync.RWMutex
	artists      map[int64]Artist
	nextArtistID int64
	nextSongID   int64
}

// NewMemory returns an empty in-memory store preloaded with seed artists.
func NewMemory(seed ...Artist) *Memory {
	m := &Memory{
		artists:      make(map[int64]Artist),
		nextArtistID: 1,
		nextSongID:   1,
	}
	for _, artist := range seed {
		_, _ = m.Save(context.Background(), artist)
	}
	return m
}

// Save stores a copy of the artist under a fresh id and assigns ids to its songs.
func (m *Memory) Save(_ context.Context, artist Artist) (Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saveLocked(artist), nil
}

// SaveAll stores every artist under one lock acquisition, so readers never
// observe a partially applied batch.
func (m *Memory) SaveAll(ctx context.Context, artists []Artist) ([]Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	saved := make([]Artist, 0, len(artists))
	for _, artist := range artists {
		saved = append(saved, m.saveLocked(artist))
	}
	return saved, nil
}

func (m *Memory) saveLocked(artist Artist) Artist {
	artist.ID = m.nextArtistID
	m.nextArtistID++

	songs := make([]Song, len(artist.Songs))
	for i, song := range artist.Songs {
		song.ID = m.nextSongID
		m.nextSongID++
		songs[i] = song
	}
	artist.Songs = songs

	m.artists[artist.ID] = cloneArtist(artist)
	return cloneArtist(artist)
}

// FindAll returns every artist ordered by id.
func (m *Memory) FindAll(_ context.Context) ([]Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Artist, 0, len(m.artists))
	for _, artist := range m.artists {
		result = append(result, cloneArtist(artist))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// FindByID returns the artist with the given id, if any.
func (m *Memory) FindByID(_ context.Context, id int64) (Artist, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	artist, ok := m.artists[id]
	if !ok {
		return Artist{}, false, nil
	}
	return cloneArtist(artist), true, nil
}

// Count returns the number of stored artists.
func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.artists), nil
}

func cloneArtist(src Artist) Artist {
	clone := src
	clone.Songs = make([]Song, len(src.Songs))
	copy(clone.Songs, src.Songs)
	return clone
}
