package artists

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"artisthub/internal/store"
)

// Store is the persistence the artist workflows depend on.
type Store interface {
	Save(ctx context.Context, artist store.Artist) (store.Artist, error)
	FindAll(ctx context.Context) ([]store.Artist, error)
	FindByID(ctx context.Context, id int64) (store.Artist, bool, error)
}

// Service provides artist-centric operations.
type Service interface {
	Create(ctx context.Context, req NewArtistRequest) (store.Artist, error)
	ListAll(ctx context.Context) ([]store.Artist, error)
	GetByID(ctx context.Context, id int64) (GetArtistResponse, error)
}

type service struct {
	store    Store
	validate *validator.Validate
}

// New constructs an artist Service backed by the supplied store.
func New(s Store) Service {
	return &service{store: s, validate: newValidator()}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (s *service) Create(ctx context.Context, req NewArtistRequest) (store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return store.Artist{}, err
	}

	if err := s.validate.Struct(req); err != nil {
		return store.Artist{}, newValidationError(err)
	}

	saved, err := s.store.Save(ctx, newArtistFromRequest(req))
	if err != nil {
		return store.Artist{}, fmt.Errorf("save artist: %w", err)
	}
	return saved, nil
}

func (s *service) ListAll(ctx context.Context) ([]store.Artist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artists, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	if artists == nil {
		artists = []store.Artist{}
	}
	return artists, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (GetArtistResponse, error) {
	if err := ctx.Err(); err != nil {
		return GetArtistResponse{}, err
	}

	artist, found, err := s.store.FindByID(ctx, id)
	if err != nil {
		return GetArtistResponse{}, fmt.Errorf("get artist %d: %w", id, err)
	}
	if !found {
		return GetArtistResponse{}, &NotFoundError{ID: id}
	}
	return responseFromArtist(artist), nil
}
