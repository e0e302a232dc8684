package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"filmroom/internal/domain"
	"filmroom/internal/logging"
	"filmroom/internal/ports"
)

// SQLiteStore implements ports.IntervalStore using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.IntervalStore = (*SQLiteStore)(nil)

// gormLogger wraps the filmroom logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FILMROOM_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at
// dbPath and migrates the schema.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	// Auto-migrate the root table
	if err := db.AutoMigrate(&GameModel{}, &BlueprintModel{}); err != nil {
		if !containsAlreadyExists(err) {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	// Manually create owned tables so ON DELETE CASCADE is explicit
	migrator := db.Migrator()

	if !migrator.HasTable(&MomentModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS moments (
				id TEXT PRIMARY KEY,
				game_id TEXT NOT NULL,
				category TEXT NOT NULL,
				start_ms INTEGER NOT NULL,
				end_ms INTEGER,
				notes TEXT NOT NULL DEFAULT '',
				player_ids TEXT NOT NULL DEFAULT '[]',
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (game_id) REFERENCES games(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create moments table: %w", err)
		}
		db.Exec("CREATE INDEX IF NOT EXISTS idx_moments_game ON moments(game_id)")
		db.Exec("CREATE INDEX IF NOT EXISTS idx_moments_category ON moments(category)")
		db.Exec("CREATE INDEX IF NOT EXISTS idx_moments_end ON moments(end_ms)")
	}

	if !migrator.HasTable(&LayerModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS layers (
				id TEXT PRIMARY KEY,
				moment_id TEXT NOT NULL,
				type TEXT NOT NULL,
				timestamp_ms INTEGER,
				value TEXT NOT NULL DEFAULT '',
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (moment_id) REFERENCES moments(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create layers table: %w", err)
		}
		db.Exec("CREATE INDEX IF NOT EXISTS idx_layers_moment ON layers(moment_id)")
	}

	if !migrator.HasTable(&ClipModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS clips (
				id TEXT PRIMARY KEY,
				game_id TEXT NOT NULL,
				start_ms INTEGER NOT NULL,
				end_ms INTEGER NOT NULL,
				title TEXT NOT NULL DEFAULT '',
				notes TEXT NOT NULL DEFAULT '',
				tags TEXT NOT NULL DEFAULT '[]',
				player_ids TEXT NOT NULL DEFAULT '[]',
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (game_id) REFERENCES games(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create clips table: %w", err)
		}
		db.Exec("CREATE INDEX IF NOT EXISTS idx_clips_game ON clips(game_id)")
	}

	if !migrator.HasTable(&PlaylistModel{}) {
		if err := db.Exec(`
			CREATE TABLE IF NOT EXISTS playlists (
				id TEXT PRIMARY KEY,
				game_id TEXT NOT NULL,
				name TEXT NOT NULL DEFAULT '',
				clip_ids TEXT NOT NULL DEFAULT '[]',
				filter TEXT,
				created_at DATETIME,
				updated_at DATETIME,
				FOREIGN KEY (game_id) REFERENCES games(id) ON UPDATE CASCADE ON DELETE CASCADE
			)
		`).Error; err != nil {
			return nil, fmt.Errorf("failed to create playlists table: %w", err)
		}
		db.Exec("CREATE INDEX IF NOT EXISTS idx_playlists_game ON playlists(game_id)")
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{db: db}, nil
}

func containsAlreadyExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}

// Close closes the database connection
func (r *SQLiteStore) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transact runs fn against a store bound to a single transaction. Every
// write inside fn commits or rolls back as one.
func (r *SQLiteStore) Transact(ctx context.Context, fn func(ports.IntervalStore) error) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(&SQLiteStore{db: tx})
		})
	}, 3)
}

// translate maps GORM errors to the domain error taxonomy
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
}

// Games

func (r *SQLiteStore) GetGame(ctx context.Context, id string) (*domain.Game, error) {
	var model GameModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	game := gameModelToDomain(model)
	return &game, nil
}

func (r *SQLiteStore) ListGames(ctx context.Context) ([]domain.Game, error) {
	var models []GameModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	games := make([]domain.Game, 0, len(models))
	for _, m := range models {
		games = append(games, gameModelToDomain(m))
	}
	return games, nil
}

func (r *SQLiteStore) AddGame(ctx context.Context, game domain.Game) error {
	model := domainToGameModel(game)
	return translate(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *SQLiteStore) DeleteGame(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&GameModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Moments

func (r *SQLiteStore) GetMoment(ctx context.Context, id string) (*domain.Moment, error) {
	var model MomentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	moment := momentModelToDomain(model)
	return &moment, nil
}

func (r *SQLiteStore) OpenMoments(ctx context.Context, gameID, category string) ([]domain.Moment, error) {
	query := r.db.WithContext(ctx).Where("game_id = ? AND end_ms IS NULL", gameID)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var models []MomentModel
	if err := query.Order("start_ms").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return momentModelsToDomain(models), nil
}

func (r *SQLiteStore) MomentsOverlapping(ctx context.Context, gameID string, startMs, endMs int64) ([]domain.Moment, error) {
	var models []MomentModel
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND start_ms < ? AND (end_ms IS NULL OR end_ms > ?)", gameID, endMs, startMs).
		Order("start_ms").
		Find(&models).Error
	if err != nil {
		return nil, translate(err)
	}
	return momentModelsToDomain(models), nil
}

func (r *SQLiteStore) ListMoments(ctx context.Context, gameID string) ([]domain.Moment, error) {
	var models []MomentModel
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Order("start_ms").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	return momentModelsToDomain(models), nil
}

func momentModelsToDomain(models []MomentModel) []domain.Moment {
	moments := make([]domain.Moment, 0, len(models))
	for _, m := range models {
		moments = append(moments, momentModelToDomain(m))
	}
	return moments
}

func (r *SQLiteStore) AddMoment(ctx context.Context, m domain.Moment) error {
	model := domainToMomentModel(m)
	return translate(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *SQLiteStore) UpdateMoment(ctx context.Context, m domain.Moment) error {
	model := domainToMomentModel(m)
	result := r.db.WithContext(ctx).Model(&MomentModel{}).Where("id = ?", m.ID).
		Select("category", "start_ms", "end_ms", "notes", "player_ids").
		Updates(map[string]any{
			"category":   model.Category,
			"start_ms":   model.StartMs,
			"end_ms":     model.EndMs,
			"notes":      model.Notes,
			"player_ids": model.PlayerIDs,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLiteStore) DeleteMoment(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MomentModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Layers

func (r *SQLiteStore) GetLayer(ctx context.Context, id string) (*domain.Layer, error) {
	var model LayerModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	layer := layerModelToDomain(model)
	return &layer, nil
}

func (r *SQLiteStore) LayersFor(ctx context.Context, momentID string) ([]domain.Layer, error) {
	var models []LayerModel
	if err := r.db.WithContext(ctx).Where("moment_id = ?", momentID).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	layers := make([]domain.Layer, 0, len(models))
	for _, m := range models {
		layers = append(layers, layerModelToDomain(m))
	}
	return layers, nil
}

func (r *SQLiteStore) AddLayer(ctx context.Context, l domain.Layer) error {
	model := domainToLayerModel(l)
	return translate(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *SQLiteStore) DeleteLayer(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&LayerModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clips

func (r *SQLiteStore) GetClip(ctx context.Context, id string) (*domain.Clip, error) {
	var model ClipModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	clip := clipModelToDomain(model)
	return &clip, nil
}

func (r *SQLiteStore) ListClips(ctx context.Context, gameID string) ([]domain.Clip, error) {
	var models []ClipModel
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Order("start_ms").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	clips := make([]domain.Clip, 0, len(models))
	for _, m := range models {
		clips = append(clips, clipModelToDomain(m))
	}
	return clips, nil
}

func (r *SQLiteStore) AddClip(ctx context.Context, c domain.Clip) error {
	model := domainToClipModel(c)
	return translate(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *SQLiteStore) UpdateClip(ctx context.Context, c domain.Clip) error {
	model := domainToClipModel(c)
	result := r.db.WithContext(ctx).Model(&ClipModel{}).Where("id = ?", c.ID).
		Updates(map[string]any{
			"start_ms":   model.StartMs,
			"end_ms":     model.EndMs,
			"title":      model.Title,
			"notes":      model.Notes,
			"tags":       model.Tags,
			"player_ids": model.PlayerIDs,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLiteStore) DeleteClip(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ClipModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Playlists

func (r *SQLiteStore) GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	var model PlaylistModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	playlist, err := playlistModelToDomain(model)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt filter spec: %v", domain.ErrStoreUnavailable, err)
	}
	return &playlist, nil
}

func (r *SQLiteStore) ListPlaylists(ctx context.Context, gameID string) ([]domain.Playlist, error) {
	var models []PlaylistModel
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).Order("created_at").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	playlists := make([]domain.Playlist, 0, len(models))
	for _, m := range models {
		p, err := playlistModelToDomain(m)
		if err != nil {
			return nil, fmt.Errorf("%w: corrupt filter spec: %v", domain.ErrStoreUnavailable, err)
		}
		playlists = append(playlists, p)
	}
	return playlists, nil
}

func (r *SQLiteStore) AddPlaylist(ctx context.Context, p domain.Playlist) error {
	model, err := domainToPlaylistModel(p)
	if err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *SQLiteStore) UpdatePlaylist(ctx context.Context, p domain.Playlist) error {
	model, err := domainToPlaylistModel(p)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&PlaylistModel{}).Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":     model.Name,
			"clip_ids": model.ClipIDs,
			"filter":   model.Filter,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLiteStore) DeletePlaylist(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PlaylistModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Blueprints

func (r *SQLiteStore) GetBlueprint(ctx context.Context, id string) (*domain.Blueprint, error) {
	var model BlueprintModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return blueprintFromModel(model)
}

func (r *SQLiteStore) GetBlueprintByName(ctx context.Context, name string) (*domain.Blueprint, error) {
	var model BlueprintModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		return nil, translate(err)
	}
	return blueprintFromModel(model)
}

func blueprintFromModel(model BlueprintModel) (*domain.Blueprint, error) {
	bp, err := blueprintModelToDomain(model)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt blueprint: %v", domain.ErrStoreUnavailable, err)
	}
	return &bp, nil
}

func (r *SQLiteStore) ListBlueprints(ctx context.Context) ([]domain.Blueprint, error) {
	var models []BlueprintModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, translate(err)
	}
	blueprints := make([]domain.Blueprint, 0, len(models))
	for _, m := range models {
		bp, err := blueprintModelToDomain(m)
		if err != nil {
			return nil, fmt.Errorf("%w: corrupt blueprint: %v", domain.ErrStoreUnavailable, err)
		}
		blueprints = append(blueprints, bp)
	}
	return blueprints, nil
}

func (r *SQLiteStore) AddBlueprint(ctx context.Context, b domain.Blueprint) error {
	model, err := domainToBlueprintModel(b)
	if err != nil {
		return err
	}
	return translate(r.db.WithContext(ctx).Create(&model).Error)
}

func (r *SQLiteStore) UpdateBlueprint(ctx context.Context, b domain.Blueprint) error {
	model, err := domainToBlueprintModel(b)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Model(&BlueprintModel{}).Where("id = ?", b.ID).
		Updates(map[string]any{
			"name":    model.Name,
			"version": model.Version,
			"buttons": model.Buttons,
		})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SQLiteStore) DeleteBlueprint(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&BlueprintModel{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
