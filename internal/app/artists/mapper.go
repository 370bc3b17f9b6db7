package artists

import "artisthub/internal/store"

// NewArtistRequest is the payload accepted when creating an artist.
type NewArtistRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=255"`
	Genre   string `json:"genre" validate:"max=100"`
	Country string `json:"country" validate:"max=100"`
}

// GetArtistResponse describes a single artist with the ids of its songs.
type GetArtistResponse struct {
	Name       string  `json:"name"`
	Genre      string  `json:"genre,omitempty"`
	Country    string  `json:"country,omitempty"`
	SongIDList []int64 `json:"songIdList"`
}

func newArtistFromRequest(req NewArtistRequest) store.Artist {
	return store.Artist{
		Name:    req.Name,
		Genre:   req.Genre,
		Country: req.Country,
		Songs:   []store.Song{},
	}
}

func responseFromArtist(artist store.Artist) GetArtistResponse {
	songIDs := make([]int64, 0, len(artist.Songs))
	for _, song := range artist.Songs {
		songIDs = append(songIDs, song.ID)
	}
	return GetArtistResponse{
		Name:       artist.Name,
		Genre:      artist.Genre,
		Country:    artist.Country,
		SongIDList: songIDs,
	}
}
