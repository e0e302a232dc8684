package cmd

// ClipsCmd manages clips
type ClipsCmd struct {
	Add     ClipsAddCmd     `cmd:"add" help:"Create a clip over an explicit range"`
	Derive  ClipsDeriveCmd  `cmd:"derive" help:"Create a clip from a closed moment with lead/lag padding"`
	List    ClipsListCmd    `cmd:"list" help:"List a game's clips" default:"1"`
	Del     ClipsDelCmd     `cmd:"del" help:"Delete a clip"`
	Players ClipsPlayersCmd `cmd:"players" help:"Add or remove a player on a clip"`
}
