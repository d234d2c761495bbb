package driven

import (
	port "github.com/alorle/streamline/internal/port/driven"
)

// Compile-time check that PlaylistHTTPSource implements PlaylistSource interface
var _ port.PlaylistSource = (*PlaylistHTTPSource)(nil)

// Compile-time check that FavoritesBoltDBRepository implements FavoritesRepository interface
var _ port.FavoritesRepository = (*FavoritesBoltDBRepository)(nil)
