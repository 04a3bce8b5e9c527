package main

import (
	"fmt"
	"log"

	"github.com/shoptalk-ai/shoptalk/internal/config"
	"github.com/shoptalk-ai/shoptalk/internal/db"
	"github.com/shoptalk-ai/shoptalk/internal/seed"
	"github.com/shoptalk-ai/shoptalk/internal/store"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var verbose bool
	var ensure bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed industry templates into the database",
		Long:  "Upserts the built-in template catalog into the template store. Safe to run repeatedly; exits non-zero when any entry fails.",
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

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			seeder := seed.New(store.NewTemplateStore(database), seed.StdLogger())
			ctx := cmd.Context()

			if ensure {
				res := seeder.EnsureSeeded(ctx)
				log.Printf("ensure seeded: skipped=%v seeded=%d updated=%d errors=%d",
					res.Skipped, res.Seeded, res.Updated, res.Errors)
				if res.Errors > 0 {
					return fmt.Errorf("%d template(s) failed to seed", res.Errors)
				}
				return nil
			}

			results := seeder.SeedAll(ctx, verbose || cfg.Verbose)
			failed := 0
			for _, r := range results {
				if r.Action == seed.ActionError {
					failed++
					log.Printf("%-24s %s: %s", r.TemplateID, r.Action, r.Err)
					continue
				}
				log.Printf("%-24s %s", r.TemplateID, r.Action)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d template(s) failed to seed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each template as it is seeded")
	cmd.Flags().BoolVar(&ensure, "ensure", false, "boot-time path: skip-report when the store already looks seeded")
	return cmd
}
