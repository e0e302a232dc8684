package storage

import "time"

// GameModel is the GORM model for the games table
type GameModel struct {
	ID              string `gorm:"primaryKey"`
	Name            string `gorm:"not null;default:''"`
	VideoPath       string `gorm:"default:''"`
	VideoDurationMs int64  `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (GameModel) TableName() string { return "games" }

// MomentModel is the GORM model for the moments table
type MomentModel struct {
	ID        string `gorm:"primaryKey"`
	GameID    string `gorm:"not null;index:idx_moments_game"`
	Category  string `gorm:"not null;index:idx_moments_category"`
	StartMs   int64  `gorm:"not null"`
	EndMs     *int64 `gorm:"default:null;index:idx_moments_end"`
	Notes     string `gorm:"default:''"`
	PlayerIDs string `gorm:"not null;default:'[]'"` // JSON array
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MomentModel) TableName() string { return "moments" }

// LayerModel is the GORM model for the layers table
type LayerModel struct {
	ID          string `gorm:"primaryKey"`
	MomentID    string `gorm:"not null;index:idx_layers_moment"`
	Type        string `gorm:"not null"`
	TimestampMs *int64 `gorm:"default:null"`
	Value       string `gorm:"default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (LayerModel) TableName() string { return "layers" }

// ClipModel is the GORM model for the clips table
type ClipModel struct {
	ID        string `gorm:"primaryKey"`
	GameID    string `gorm:"not null;index:idx_clips_game"`
	StartMs   int64  `gorm:"not null"`
	EndMs     int64  `gorm:"not null"`
	Title     string `gorm:"default:''"`
	Notes     string `gorm:"default:''"`
	Tags      string `gorm:"not null;default:'[]'"` // JSON array
	PlayerIDs string `gorm:"not null;default:'[]'"` // JSON array
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ClipModel) TableName() string { return "clips" }

// PlaylistModel is the GORM model for the playlists table
type PlaylistModel struct {
	ID        string  `gorm:"primaryKey"`
	GameID    string  `gorm:"not null;index:idx_playlists_game"`
	Name      string  `gorm:"not null;default:''"`
	ClipIDs   string  `gorm:"not null;default:'[]'"` // JSON array, ordered
	Filter    *string `gorm:"default:null"`          // JSON FilterSpec, nil = no stored filter
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PlaylistModel) TableName() string { return "playlists" }

// BlueprintModel is the GORM model for the blueprints table
type BlueprintModel struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex:idx_blueprints_name"`
	Version   int    `gorm:"not null;default:1"`
	Buttons   string `gorm:"not null;default:'[]'"` // JSON []ButtonDefinition
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (BlueprintModel) TableName() string { return "blueprints" }
