package storage

import (
	"encoding/json"

	"filmroom/internal/domain"
	"filmroom/internal/logging"
)

// marshalStrings serializes a string slice to its JSON column form.
// nil and empty both become "[]" so the column is never NULL.
func marshalStrings(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		logging.Logger.Error("Failed to marshal string list", "error", err)
		return "[]"
	}
	return string(data)
}

func unmarshalStrings(data string) []string {
	if data == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		logging.Logger.Error("Failed to unmarshal string list", "error", err, "data", data)
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func gameModelToDomain(m GameModel) domain.Game {
	return domain.Game{
		ID:              m.ID,
		Name:            m.Name,
		VideoPath:       m.VideoPath,
		VideoDurationMs: m.VideoDurationMs,
		CreatedAt:       m.CreatedAt,
	}
}

func domainToGameModel(g domain.Game) GameModel {
	return GameModel{
		ID:              g.ID,
		Name:            g.Name,
		VideoPath:       g.VideoPath,
		VideoDurationMs: g.VideoDurationMs,
		CreatedAt:       g.CreatedAt,
	}
}

func momentModelToDomain(m MomentModel) domain.Moment {
	return domain.Moment{
		ID:        m.ID,
		GameID:    m.GameID,
		Category:  m.Category,
		StartMs:   m.StartMs,
		EndMs:     m.EndMs,
		Notes:     m.Notes,
		PlayerIDs: unmarshalStrings(m.PlayerIDs),
		CreatedAt: m.CreatedAt,
	}
}

func domainToMomentModel(m domain.Moment) MomentModel {
	return MomentModel{
		ID:        m.ID,
		GameID:    m.GameID,
		Category:  m.Category,
		StartMs:   m.StartMs,
		EndMs:     m.EndMs,
		Notes:     m.Notes,
		PlayerIDs: marshalStrings(m.PlayerIDs),
		CreatedAt: m.CreatedAt,
	}
}

func layerModelToDomain(m LayerModel) domain.Layer {
	return domain.Layer{
		ID:          m.ID,
		MomentID:    m.MomentID,
		Type:        m.Type,
		TimestampMs: m.TimestampMs,
		Value:       m.Value,
		CreatedAt:   m.CreatedAt,
	}
}

func domainToLayerModel(l domain.Layer) LayerModel {
	return LayerModel{
		ID:          l.ID,
		MomentID:    l.MomentID,
		Type:        l.Type,
		TimestampMs: l.TimestampMs,
		Value:       l.Value,
		CreatedAt:   l.CreatedAt,
	}
}

func clipModelToDomain(m ClipModel) domain.Clip {
	return domain.Clip{
		ID:        m.ID,
		GameID:    m.GameID,
		StartMs:   m.StartMs,
		EndMs:     m.EndMs,
		Title:     m.Title,
		Notes:     m.Notes,
		Tags:      unmarshalStrings(m.Tags),
		PlayerIDs: unmarshalStrings(m.PlayerIDs),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func domainToClipModel(c domain.Clip) ClipModel {
	return ClipModel{
		ID:        c.ID,
		GameID:    c.GameID,
		StartMs:   c.StartMs,
		EndMs:     c.EndMs,
		Title:     c.Title,
		Notes:     c.Notes,
		Tags:      marshalStrings(c.Tags),
		PlayerIDs: marshalStrings(c.PlayerIDs),
		CreatedAt: c.CreatedAt,
	}
}

func playlistModelToDomain(m PlaylistModel) (domain.Playlist, error) {
	p := domain.Playlist{
		ID:        m.ID,
		GameID:    m.GameID,
		Name:      m.Name,
		ClipIDs:   unmarshalStrings(m.ClipIDs),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Filter != nil && *m.Filter != "" {
		var spec domain.FilterSpec
		if err := json.Unmarshal([]byte(*m.Filter), &spec); err != nil {
			return domain.Playlist{}, err
		}
		p.Filter = &spec
	}
	return p, nil
}

func domainToPlaylistModel(p domain.Playlist) (PlaylistModel, error) {
	m := PlaylistModel{
		ID:        p.ID,
		GameID:    p.GameID,
		Name:      p.Name,
		ClipIDs:   marshalStrings(p.ClipIDs),
		CreatedAt: p.CreatedAt,
	}
	if p.Filter != nil {
		data, err := json.Marshal(p.Filter)
		if err != nil {
			return PlaylistModel{}, err
		}
		s := string(data)
		m.Filter = &s
	}
	return m, nil
}

func blueprintModelToDomain(m BlueprintModel) (domain.Blueprint, error) {
	var buttons []domain.ButtonDefinition
	if m.Buttons != "" {
		if err := json.Unmarshal([]byte(m.Buttons), &buttons); err != nil {
			return domain.Blueprint{}, err
		}
	}
	return domain.Blueprint{
		ID:        m.ID,
		Name:      m.Name,
		Version:   m.Version,
		Buttons:   buttons,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func domainToBlueprintModel(b domain.Blueprint) (BlueprintModel, error) {
	data, err := json.Marshal(b.Buttons)
	if err != nil {
		return BlueprintModel{}, err
	}
	return BlueprintModel{
		ID:        b.ID,
		Name:      b.Name,
		Version:   b.Version,
		Buttons:   string(data),
		CreatedAt: b.CreatedAt,
	}, nil
}
