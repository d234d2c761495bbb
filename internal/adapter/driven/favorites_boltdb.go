package driven

import (
	"context"
	"encoding/json"
	"errors"

	"go.etcd.io/bbolt"

	"github.com/alorle/streamline/internal/favorite"
	"github.com/alorle/streamline/internal/port/driven"
)

const (
	favoritesBucket = "favorites"
)

// FavoritesBoltDBRepository implements the FavoritesRepository port using BoltDB.
// Favorites are stored as a single JSON array of ids under favorite.StorageKey.
type FavoritesBoltDBRepository struct {
	db *bbolt.DB
}

// NewFavoritesBoltDBRepository creates a new BoltDB-backed favorites repository.
// It initializes the required bucket if it doesn't exist.
func NewFavoritesBoltDBRepository(db *bbolt.DB) (*FavoritesBoltDBRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(favoritesBucket))
		return err
	})
	if err != nil {
		return nil, err
	}

	return &FavoritesBoltDBRepository{db: db}, nil
}

// Load retrieves the stored favorites from BoltDB.
func (r *FavoritesBoltDBRepository) Load(ctx context.Context) (favorite.Set, error) {
	if err := ctx.Err(); err != nil {
		return favorite.Set{}, err
	}

	var ids []string

	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(favoritesBucket))
		if bucket == nil {
			return errors.New("favorites bucket not found")
		}

		data := bucket.Get([]byte(favorite.StorageKey))
		if data == nil {
			return nil
		}

		return json.Unmarshal(data, &ids)
	})
	if err != nil {
		return favorite.Set{}, err
	}

	return favorite.NewSet(ids...), nil
}

// Store replaces the stored favorites in BoltDB.
func (r *FavoritesBoltDBRepository) Store(ctx context.Context, set favorite.Set) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(set.IDs())
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(favoritesBucket))
		if bucket == nil {
			return errors.New("favorites bucket not found")
		}
		return bucket.Put([]byte(favorite.StorageKey), data)
	})
}

// Ping checks if the BoltDB database is accessible and operational.
func (r *FavoritesBoltDBRepository) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(favoritesBucket)) == nil {
			return errors.New("favorites bucket not found")
		}
		return nil
	})
}

// Ensure FavoritesBoltDBRepository implements the driven.FavoritesRepository interface
var _ driven.FavoritesRepository = (*FavoritesBoltDBRepository)(nil)
