package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/zerioak/pteroctl/internal/ptero"
	"github.com/zerioak/pteroctl/internal/ui"
	"github.com/zerioak/pteroctl/internal/wizard"
)

// CreateServer walks the operator through the server creation wizard
// and commits the result to the panel.
func CreateServer(ctx context.Context) error {
	if !ui.Interactive() {
		return errors.New("the creation wizard requires an interactive terminal")
	}

	client, cfg, err := newPanelClient()
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := sessionContext(ctx, cfg)
	defer cancel()

	eng := wizard.New(client)
	prompt := eng.Start()

	for eng.Stage() != wizard.StageReview {
		input, err := collectInput(ctx, prompt)
		if err != nil {
			return err
		}

		next, err := eng.Advance(ctx, input)
		if err != nil {
			var verr *wizard.ValidationError
			if errors.As(err, &verr) {
				// Stage input was rejected; ask again.
				fmt.Printf("%s %s\n", ui.WarningStyle.Render(ui.WarnMark), verr.Error())
				continue
			}
			var empty *wizard.EmptyResultError
			if errors.As(err, &empty) {
				fmt.Printf("%s %s\n", ui.FailedStyle.Render(ui.CrossMark), empty.Error())
			}
			return err
		}
		prompt = next
	}

	confirmed, err := confirmReview(ctx, prompt)
	if err != nil {
		return err
	}
	if !confirmed {
		eng.Cancel()
		fmt.Println(ui.DimStyle.Render("wizard cancelled, nothing was created"))
		return nil
	}

	server, err := eng.Commit(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s server %s created with id %d (%s)\n",
		ui.ReadyStyle.Render(ui.CheckMark),
		server.AttrStr("name"), server.AttrInt("id"), ptero.Identifier(server))
	return nil
}

// collectInput renders one wizard prompt as a huh form and returns the
// stage input for the engine.
func collectInput(ctx context.Context, prompt *wizard.Prompt) (any, error) {
	printContext(prompt)

	if len(prompt.Choices) > 0 {
		return collectChoice(ctx, prompt)
	}

	switch prompt.Stage {
	case wizard.StageBasics:
		return collectBasics(ctx, prompt)
	case wizard.StageResources:
		return collectResources(ctx, prompt)
	default:
		return nil, fmt.Errorf("stage %s has no input form", prompt.Stage)
	}
}

func collectChoice(ctx context.Context, prompt *wizard.Prompt) (any, error) {
	options := make([]huh.Option[string], 0, len(prompt.Choices))
	for _, choice := range prompt.Choices {
		label := choice.Label
		if choice.Description != "" {
			label = fmt.Sprintf("%s (%s)", choice.Label, choice.Description)
		}
		options = append(options, huh.NewOption(label, choice.Value))
	}

	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(prompt.Title).
				Options(options...).
				Value(&value),
		).Title(prompt.Title),
	).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return wizard.ChoiceInput{Value: value}, nil
}

func collectBasics(ctx context.Context, prompt *wizard.Prompt) (any, error) {
	var in wizard.BasicsInput

	fields := map[string]*string{
		"name":        &in.Name,
		"description": &in.Description,
		"external_id": &in.ExternalID,
	}

	inputs := make([]huh.Field, 0, len(prompt.Fields))
	for _, f := range prompt.Fields {
		dest, ok := fields[f.Key]
		if !ok {
			continue
		}
		inputs = append(inputs, huh.NewInput().
			Title(fieldTitle(f)).
			Placeholder(f.Placeholder).
			Value(dest))
	}

	err := huh.NewForm(huh.NewGroup(inputs...).Title(prompt.Title)).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return in, nil
}

func collectResources(ctx context.Context, prompt *wizard.Prompt) (any, error) {
	var in wizard.ResourcesInput

	fields := map[string]*string{
		"memory": &in.Memory,
		"disk":   &in.Disk,
		"cpu":    &in.CPU,
		"swap":   &in.Swap,
		"io":     &in.IO,
	}

	inputs := make([]huh.Field, 0, len(prompt.Fields))
	for _, f := range prompt.Fields {
		dest, ok := fields[f.Key]
		if !ok {
			continue
		}
		*dest = f.Default
		inputs = append(inputs, huh.NewInput().
			Title(f.Label).
			Value(dest))
	}

	err := huh.NewForm(huh.NewGroup(inputs...).Title(prompt.Title)).RunWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return in, nil
}

func confirmReview(ctx context.Context, prompt *wizard.Prompt) (bool, error) {
	printContext(prompt)

	confirmed := true
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create this server?").
				Affirmative("Create").
				Negative("Cancel").
				Value(&confirmed),
		).Title(prompt.Title),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return confirmed, nil
}

func printContext(prompt *wizard.Prompt) {
	for _, line := range prompt.Context {
		fmt.Println(ui.DimStyle.Render("  " + line))
	}
}

func fieldTitle(f wizard.Field) string {
	if f.Optional {
		return f.Label + " (optional)"
	}
	return f.Label
}
