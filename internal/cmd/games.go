package cmd

// GamesCmd manages games
type GamesCmd struct {
	Add  GamesAddCmd  `cmd:"add" help:"Register a game and its recording"`
	List GamesListCmd `cmd:"list" help:"List all games" default:"1"`
	Del  GamesDelCmd  `cmd:"del" help:"Delete a game and everything tagged against it"`
}
