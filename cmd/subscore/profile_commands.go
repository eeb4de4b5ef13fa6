package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"subscore/internal/profiles"
)

func newProfilesCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"profile"},
		Short:   "Manage custom score profiles",
	}
	cmd.AddCommand(newProfilesListCommand(ctx))
	cmd.AddCommand(newProfilesAddCommand(ctx))
	cmd.AddCommand(newProfilesShowCommand(ctx))
	cmd.AddCommand(newProfilesRemoveCommand(ctx))
	return cmd
}

func newProfilesListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *profiles.Store) error {
				list, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					views := make([]profileView, 0, len(list))
					for _, p := range list {
						views = append(views, newProfileView(p))
					}
					return writeJSON(cmd, views)
				}
				rows := make([][]string, 0, len(list))
				for _, p := range list {
					rows = append(rows, []string{
						p.Name,
						strconv.Itoa(p.Score),
						mediaTypeLabel(p.MediaType),
						strconv.Itoa(len(p.Conditions)),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "Score", "Media", "Conditions"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight},
				))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}

func newProfilesAddCommand(ctx *commandContext) *cobra.Command {
	var (
		scoreValue int
		mediaType  string
		optional   []string
		required   []string
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a profile",
		Long: "Create a custom score profile.\n\n" +
			"Conditions take the form type=value where type is provider, uploader, language, or regex.\n" +
			"Prefix the type with ! to negate it. A profile matches when every --require condition holds\n" +
			"and, if any --when conditions exist, at least one of them holds.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conditions := make([]profiles.Condition, 0, len(optional)+len(required))
			for _, raw := range optional {
				cond, err := parseCondition(raw, false)
				if err != nil {
					return err
				}
				conditions = append(conditions, cond)
			}
			for _, raw := range required {
				cond, err := parseCondition(raw, true)
				if err != nil {
					return err
				}
				conditions = append(conditions, cond)
			}
			profile := profiles.Profile{
				Name:       args[0],
				Score:      scoreValue,
				MediaType:  mediaType,
				Conditions: conditions,
			}
			return ctx.withStore(cmd.Context(), func(store *profiles.Store) error {
				created, err := store.Create(cmd.Context(), profile)
				if err != nil {
					if errors.Is(err, profiles.ErrDuplicate) {
						return fmt.Errorf("profile %q already exists (remove it first)", profile.Name)
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s (%s) worth %d\n", created.Name, created.MatchKind(), created.Score)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&scoreValue, "score", 0, "Weight awarded when the profile matches")
	cmd.Flags().StringVar(&mediaType, "media-type", "", "Limit to episode or movie (default both)")
	cmd.Flags().StringArrayVar(&optional, "when", nil, "Optional condition type=value (repeatable)")
	cmd.Flags().StringArrayVar(&required, "require", nil, "Required condition type=value (repeatable)")
	_ = cmd.MarkFlagRequired("score")
	return cmd
}

func newProfilesShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a profile and its conditions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *profiles.Store) error {
				p, err := store.GetByName(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, newProfileView(*p))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Name:       %s\n", p.Name)
				fmt.Fprintf(out, "ID:         %s\n", p.ID)
				fmt.Fprintf(out, "Match kind: %s\n", p.MatchKind())
				fmt.Fprintf(out, "Score:      %d\n", p.Score)
				fmt.Fprintf(out, "Media:      %s\n", mediaTypeLabel(p.MediaType))
				fmt.Fprintf(out, "Created:    %s\n", p.CreatedAt.Local().Format(time.DateTime))
				rows := make([][]string, 0, len(p.Conditions))
				for _, cond := range p.Conditions {
					rows = append(rows, []string{string(cond.Type), cond.Value, yesNo(cond.Required), yesNo(cond.Negate)})
				}
				fmt.Fprintln(out, renderTable([]string{"Type", "Value", "Required", "Negate"}, rows, nil))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}

func newProfilesRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(cmd.Context(), func(store *profiles.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed profile %s\n", args[0])
				return nil
			})
		},
	}
}

// parseCondition reads "type=value" or "!type=value".
func parseCondition(raw string, required bool) (profiles.Condition, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return profiles.Condition{}, fmt.Errorf("condition %q must be type=value", raw)
	}
	key = strings.TrimSpace(key)
	negate := strings.HasPrefix(key, "!")
	condType, err := profiles.ParseConditionType(strings.TrimPrefix(key, "!"))
	if err != nil {
		return profiles.Condition{}, err
	}
	return profiles.Condition{
		Type:     condType,
		Value:    strings.TrimSpace(value),
		Required: required,
		Negate:   negate,
	}, nil
}

func mediaTypeLabel(mediaType string) string {
	if mediaType == "" {
		return "any"
	}
	return mediaType
}

type conditionView struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
	Negate   bool   `json:"negate"`
}

type profileView struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	MatchKind  string          `json:"match_kind"`
	Score      int             `json:"score"`
	MediaType  string          `json:"media_type,omitempty"`
	Conditions []conditionView `json:"conditions"`
	CreatedAt  time.Time       `json:"created_at"`
}

func newProfileView(p profiles.Profile) profileView {
	view := profileView{
		ID:         p.ID,
		Name:       p.Name,
		MatchKind:  string(p.MatchKind()),
		Score:      p.Score,
		MediaType:  p.MediaType,
		Conditions: make([]conditionView, 0, len(p.Conditions)),
		CreatedAt:  p.CreatedAt,
	}
	for _, cond := range p.Conditions {
		view.Conditions = append(view.Conditions, conditionView{
			Type:     string(cond.Type),
			Value:    cond.Value,
			Required: cond.Required,
			Negate:   cond.Negate,
		})
	}
	return view
}
