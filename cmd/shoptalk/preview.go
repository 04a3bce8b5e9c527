package main

import (
	"fmt"

	"github.com/shoptalk-ai/shoptalk/internal/config"
	"github.com/shoptalk-ai/shoptalk/internal/db"
	"github.com/shoptalk-ai/shoptalk/internal/prompt"
	"github.com/shoptalk-ai/shoptalk/internal/store"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var botID string
	var preset string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the compiled system prompt for a bot",
		Long:  "Loads a provisioned bot configuration and prints the system prompt exactly as the conversation layer would compile it this turn.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			var bots store.BotStoreIface = store.NewBotStore(database)
			if rdb := newRedisClient(cfg); rdb != nil {
				bots = store.NewCachedBotStore(bots, rdb, cfg.CacheTTL)
			}

			botCfg, err := bots.GetBotConfig(cmd.Context(), botID)
			if err != nil {
				return err
			}

			fmt.Println(prompt.BuildSystemPrompt(botCfg, preset))
			return nil
		},
	}

	cmd.Flags().StringVar(&botID, "bot-id", "", "bot id (required)")
	cmd.Flags().StringVar(&preset, "preset", "", "behavior preset override")
	_ = cmd.MarkFlagRequired("bot-id")
	return cmd
}
