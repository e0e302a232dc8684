package cmd

// LayersCmd manages point events attached to moments
type LayersCmd struct {
	Add  LayersAddCmd  `cmd:"add" help:"Attach a point event to a moment"`
	List LayersListCmd `cmd:"list" help:"List a moment's point events" default:"1"`
}
