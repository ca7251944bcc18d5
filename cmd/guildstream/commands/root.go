package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/forgo/guildstream/internal/config"
	"github.com/forgo/guildstream/internal/model"
	"github.com/forgo/guildstream/internal/service"
)

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the guildstream root command
func NewRootCommand() *cobra.Command {
	var cfg *config.Config

	return &cobra.Command{
		Use:          "guildstream",
		Short:        "Run roster queries over the sample guilds",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			cfg = loaded

			slog.SetDefault(slog.New(cfg.Log.NewHandler(cmd.ErrOrStderr())))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			skill, err := cfg.Demo.FilterSkill()
			if err != nil {
				return err
			}
			runDemo(cmd.OutOrStdout(), slog.Default(), skill)
			return nil
		},
	}
}

// runDemo performs every roster operation once, in a fixed order
func runDemo(out io.Writer, logger *slog.Logger, skill model.Skill) {
	seeder := service.NewSeederService()
	roster := service.NewRosterService(service.RosterServiceConfig{
		Out:    out,
		Logger: logger,
	})

	guilds := seeder.SampleGuilds()
	logger.Info("built sample guilds", slog.Int("guilds", len(guilds)))

	fmt.Fprintf(out, "Filtered Adventurers by Skill (%s)\n\n", skill.DisplayName())
	roster.PrintAdventurers(roster.FilterBySkill(guilds, skill))

	fmt.Fprint(out, "\nGroups Adventurers By Role\n\n")
	roster.GroupByRole(guilds)

	fmt.Fprint(out, "\nFinds the Adventurer with the Most Skills\n\n")
	if best, ok := roster.FindMostSkilled(guilds).Get(); ok {
		fmt.Fprintln(out, best)
	} else {
		fmt.Fprintln(out, "No adventurers found")
	}

	fmt.Fprint(out, "\nRanks Guilds by the Average Age\n\n")
	roster.RankByAverageAge(guilds)

	fmt.Fprint(out, "\nShows How Many Adventurers Know Each Skill\n\n")
	roster.PrintSkillCounts(roster.SkillCountMap(guilds))

	fmt.Fprint(out, "\nApplies the Bonus Gold Event\n\n")
	roster.BonusGoldEvent(guilds)
	roster.PrintGoldLedger(guilds)
}
