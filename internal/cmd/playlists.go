package cmd

// PlaylistsCmd manages playlists
type PlaylistsCmd struct {
	Create     PlaylistsCreateCmd     `cmd:"create" help:"Create a playlist from a filter or an explicit clip list"`
	List       PlaylistsListCmd       `cmd:"list" help:"List a game's playlists" default:"1"`
	Show       PlaylistsShowCmd       `cmd:"show" help:"Show a playlist's clips"`
	Regenerate PlaylistsRegenerateCmd `cmd:"regenerate" help:"Re-run stored filters against the current clip corpus"`
	Reorder    PlaylistsReorderCmd    `cmd:"reorder" help:"Reorder a playlist's clips"`
	AddClip    PlaylistsAddClipCmd    `cmd:"add-clip" help:"Add a clip to a playlist by hand"`
	RemoveClip PlaylistsRemoveClipCmd `cmd:"remove-clip" help:"Remove a clip from a playlist"`
	Del        PlaylistsDelCmd        `cmd:"del" help:"Delete a playlist (clips are untouched)"`
}
