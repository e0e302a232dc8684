package ports

import (
	"context"

	"filmroom/internal/domain"
)

// GameReader reads game records.
type GameReader interface {
	GetGame(ctx context.Context, id string) (*domain.Game, error)
	ListGames(ctx context.Context) ([]domain.Game, error)
}

// GameWriter creates and deletes games. Deleting a game cascades to its
// moments, layers, clips and playlists.
type GameWriter interface {
	AddGame(ctx context.Context, game domain.Game) error
	DeleteGame(ctx context.Context, id string) error
}

// MomentReader reads moment records.
type MomentReader interface {
	GetMoment(ctx context.Context, id string) (*domain.Moment, error)
	// OpenMoments returns the open moments for a game, optionally
	// narrowed to one category (empty string = all categories), ordered
	// by start.
	OpenMoments(ctx context.Context, gameID, category string) ([]domain.Moment, error)
	// MomentsOverlapping returns moments whose active window touches the
	// half-open range [startMs, endMs); open-ended moments count as
	// extending to "now".
	MomentsOverlapping(ctx context.Context, gameID string, startMs, endMs int64) ([]domain.Moment, error)
	ListMoments(ctx context.Context, gameID string) ([]domain.Moment, error)
}

// MomentWriter creates and mutates moment records.
type MomentWriter interface {
	AddMoment(ctx context.Context, m domain.Moment) error
	UpdateMoment(ctx context.Context, m domain.Moment) error
	DeleteMoment(ctx context.Context, id string) error
}

// LayerReader reads layer records.
type LayerReader interface {
	GetLayer(ctx context.Context, id string) (*domain.Layer, error)
	// LayersFor returns a moment's layers ordered by creation.
	LayersFor(ctx context.Context, momentID string) ([]domain.Layer, error)
}

// LayerWriter creates and deletes layer records.
type LayerWriter interface {
	AddLayer(ctx context.Context, l domain.Layer) error
	DeleteLayer(ctx context.Context, id string) error
}

// ClipReader reads clip records.
type ClipReader interface {
	GetClip(ctx context.Context, id string) (*domain.Clip, error)
	ListClips(ctx context.Context, gameID string) ([]domain.Clip, error)
}

// ClipWriter creates and mutates clip records.
type ClipWriter interface {
	AddClip(ctx context.Context, c domain.Clip) error
	UpdateClip(ctx context.Context, c domain.Clip) error
	DeleteClip(ctx context.Context, id string) error
}

// PlaylistReader reads playlist records.
type PlaylistReader interface {
	GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error)
	ListPlaylists(ctx context.Context, gameID string) ([]domain.Playlist, error)
}

// PlaylistWriter creates and mutates playlist records.
type PlaylistWriter interface {
	AddPlaylist(ctx context.Context, p domain.Playlist) error
	UpdatePlaylist(ctx context.Context, p domain.Playlist) error
	DeletePlaylist(ctx context.Context, id string) error
}

// BlueprintReader reads blueprint configurations.
type BlueprintReader interface {
	GetBlueprint(ctx context.Context, id string) (*domain.Blueprint, error)
	GetBlueprintByName(ctx context.Context, name string) (*domain.Blueprint, error)
	ListBlueprints(ctx context.Context) ([]domain.Blueprint, error)
}

// BlueprintWriter creates and mutates blueprint configurations.
type BlueprintWriter interface {
	AddBlueprint(ctx context.Context, b domain.Blueprint) error
	UpdateBlueprint(ctx context.Context, b domain.Blueprint) error
	DeleteBlueprint(ctx context.Context, id string) error
}

// IntervalStore is the composite persistence contract. Transact runs fn
// against a store bound to a single transaction: every write inside the
// callback commits or rolls back as one, which is what makes trigger
// propagation atomic. Reads outside a transaction observe committed
// state only, never a partially applied propagation.
type IntervalStore interface {
	GameReader
	GameWriter
	MomentReader
	MomentWriter
	LayerReader
	LayerWriter
	ClipReader
	ClipWriter
	PlaylistReader
	PlaylistWriter
	BlueprintReader
	BlueprintWriter

	Transact(ctx context.Context, fn func(IntervalStore) error) error
	Close() error
}
