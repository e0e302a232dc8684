package cmd

// BlueprintsCmd manages tagging blueprints
type BlueprintsCmd struct {
	List BlueprintsListCmd `cmd:"list" help:"List all blueprints" default:"1"`
	Show BlueprintsShowCmd `cmd:"show" help:"Show a blueprint's button definitions"`
	Seed BlueprintsSeedCmd `cmd:"seed" help:"Create the default blueprint if missing"`
}
