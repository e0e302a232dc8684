package cmd

// MomentsCmd manages tagged moments
type MomentsCmd struct {
	List   MomentsListCmd   `cmd:"list" help:"List a game's moments" default:"1"`
	Close  MomentsCloseCmd  `cmd:"close" help:"Close one open moment"`
	Retime MomentsRetimeCmd `cmd:"retime" help:"Correct a closed moment's interval"`
}
