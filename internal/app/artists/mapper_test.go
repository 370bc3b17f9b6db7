package artists

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"artisthub/internal/store"
)

func TestNewArtistFromRequest(t *testing.T) {
	artist := newArtistFromRequest(NewArtistRequest{Name: "Nils Frahm", Genre: "Modern Classical", Country: "DE"})

	assert.Equal(t, store.Artist{
		Name:    "Nils Frahm",
		Genre:   "Modern Classical",
		Country: "DE",
		Songs:   []store.Song{},
	}, artist)
}

func TestResponseFromArtistBuildsFreshList(t *testing.T) {
	artist := store.Artist{
		ID:    3,
		Name:  "Bonobo",
		Songs: []store.Song{{ID: 5}, {ID: 6}},
	}

	resp := responseFromArtist(artist)
	resp.SongIDList[0] = 99

	assert.Equal(t, int64(5), artist.Songs[0].ID)
	assert.Equal(t, []int64{99, 6}, resp.SongIDList)
}

func TestResponseFromArtistWithoutSongs(t *testing.T) {
	resp := responseFromArtist(store.Artist{Name: "Bonobo"})

	assert.NotNil(t, resp.SongIDList)
	assert.Empty(t, resp.SongIDList)
}
