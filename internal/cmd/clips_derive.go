package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"filmroom/internal/domain"
	"filmroom/internal/services"
)

// ClipsDeriveCmd creates a clip from a closed moment
type ClipsDeriveCmd struct {
	Moment string `arg:"" help:"ID of the closed moment to derive from"`
	Lead   int    `help:"Seconds of padding before the moment (-1 = use blueprint value)" default:"-1"`
	Lag    int    `help:"Seconds of padding after the moment (-1 = use blueprint value)" default:"-1"`
	Edit   bool   `help:"Edit title, notes and tags interactively before saving" short:"e"`
}

// Run executes the derive command
func (c *ClipsDeriveCmd) Run(cli *CLI) error {
	ctx := context.Background()

	lead, lag := c.Lead, c.Lag
	if lead < 0 || lag < 0 {
		blueprintLead, blueprintLag := c.blueprintPadding(ctx, cli)
		if lead < 0 {
			lead = blueprintLead
		}
		if lag < 0 {
			lag = blueprintLag
		}
	}

	draft, err := cli.Container.ClipService.DeriveFromMoment(ctx, c.Moment, lead, lag)
	if err != nil {
		return fmt.Errorf("failed to derive clip: %w", err)
	}

	if c.Edit {
		if err := editDraft(draft); err != nil {
			return err
		}
	}

	clip, err := cli.Container.ClipService.CreateClip(ctx, *draft)
	if err != nil {
		return fmt.Errorf("failed to create clip: %w", err)
	}

	fmt.Printf("Clip %s created: %s - %s (%s)\n",
		clip.ID, formatTimestamp(clip.StartMs), formatTimestamp(clip.EndMs), clip.Title)
	if len(clip.PlayerIDs) > 0 {
		fmt.Printf("Players: %s\n", strings.Join(clip.PlayerIDs, ", "))
	}
	return nil
}

// editDraft lets the analyst adjust the derived clip before saving.
func editDraft(draft *services.CreateClipParams) error {
	tags := strings.Join(draft.Tags, ",")

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Value(&draft.Title),
		huh.NewInput().
			Title("Notes").
			Value(&draft.Notes),
		huh.NewInput().
			Title("Tags").
			Description("Comma-separated outcome tags (e.g. score,fast-break)").
			Value(&tags),
	))
	if err := form.Run(); err != nil {
		return fmt.Errorf("clip edit cancelled: %w", err)
	}

	draft.Tags = splitList(tags)
	return nil
}

// blueprintPadding looks up the moment's category padding in the
// configured blueprint. Unknown categories fall back to zero padding.
func (c *ClipsDeriveCmd) blueprintPadding(ctx context.Context, cli *CLI) (int, int) {
	m, err := cli.Container.Store().GetMoment(ctx, c.Moment)
	if err != nil {
		return 0, 0
	}
	bp, err := cli.Container.BlueprintService.GetByName(ctx, cli.Container.BlueprintName)
	if err != nil {
		return 0, 0
	}
	var btn *domain.ButtonDefinition
	if btn, err = bp.Resolve(m.Category); err != nil {
		return 0, 0
	}
	return btn.LeadSec, btn.LagSec
}
