package application

import (
	"context"
	"strings"

	"github.com/alorle/streamline/internal/favorite"
	"github.com/alorle/streamline/internal/m3u"
)

// PlaylistService re-exports the normalized catalog as an M3U playlist.
type PlaylistService struct {
	catalog   *CatalogService
	favorites *FavoritesService
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(catalog *CatalogService, favorites *FavoritesService) *PlaylistService {
	return &PlaylistService{
		catalog:   catalog,
		favorites: favorites,
	}
}

// GenerateM3U generates an M3U playlist with the catalog channels matching q.
// Returns a playlist with only the #EXTM3U header if nothing matches.
func (p *PlaylistService) GenerateM3U(ctx context.Context, q Query) (string, error) {
	var favs favorite.Set
	if q.Category == CategoryFavorites {
		loaded, err := p.favorites.List(ctx)
		if err != nil {
			return "", err
		}
		favs = loaded
	}

	channels, err := p.catalog.Filter(ctx, q, favs)
	if err != nil {
		return "", err
	}

	encoder := m3u.NewEncoder()
	for _, ch := range channels {
		encoder.AddChannel(ch)
	}

	var builder strings.Builder
	if err := encoder.Encode(&builder); err != nil {
		return "", err
	}

	return builder.String(), nil
}
