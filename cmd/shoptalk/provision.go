package main

import (
	"errors"
	"log"
	"strings"

	"github.com/shoptalk-ai/shoptalk/internal/config"
	"github.com/shoptalk-ai/shoptalk/internal/db"
	"github.com/shoptalk-ai/shoptalk/internal/metrics"
	"github.com/shoptalk-ai/shoptalk/internal/provision"
	"github.com/shoptalk-ai/shoptalk/internal/seed"
	"github.com/shoptalk-ai/shoptalk/internal/store"
	"github.com/spf13/cobra"
)

func newProvisionCmd() *cobra.Command {
	var (
		template     string
		clientID     string
		clientName   string
		botID        string
		bookingURL   string
		preset       string
		plan         string
		timezone     string
		contactPhone string
		contactEmail string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision a client bot from a template",
		Long:  "Builds a bot configuration bundle from a persisted template plus the given overrides and persists it.",
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

			ctx := cmd.Context()

			// Accept either the industry key (barber) or the persisted id
			// (barber_template).
			templateID := template
			if !strings.HasSuffix(templateID, "_template") {
				templateID = seed.PersistedTemplateID(templateID)
			}

			rec, err := store.NewTemplateStore(database).GetByID(ctx, templateID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
			// rec stays nil on ErrNotFound; the engine reports it as a
			// MISSING_TEMPLATE validation failure.

			bundle, err := provision.BuildClientFromTemplate(rec, provision.Overrides{
				ClientID:           clientID,
				ClientName:         clientName,
				BotID:              botID,
				Contact:            provision.Contact{Phone: contactPhone, Email: contactEmail},
				Plan:               plan,
				ExternalBookingURL: bookingURL,
				BehaviorPreset:     preset,
				Timezone:           timezone,
			})
			if err != nil {
				return err
			}

			var bots store.BotStoreIface = store.NewBotStore(database)
			if rdb := newRedisClient(cfg); rdb != nil {
				bots = store.NewCachedBotStore(bots, rdb, cfg.CacheTTL)
			}
			if err := bots.SaveBundle(ctx, bundle); err != nil {
				return err
			}

			metrics.ClientsProvisionedTotal.Inc()
			log.Printf("provisioned bot %s for client %s (%s)", bundle.Config.BotID, clientID, templateID)
			log.Printf("  business:  %s", bundle.Config.BusinessProfile.BusinessName)
			log.Printf("  booking:   %s mode, failsafe=%v", bundle.BookingProfile.Mode, bundle.BookingProfile.FailsafeEnabled)
			log.Printf("  preset:    %s (%s lead sensitivity)", bundle.ClientSettings.BehaviorPreset, bundle.Config.Automations.LeadDetection.Sensitivity)
			log.Printf("  faqs:      %d", len(bundle.FAQs))
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "industry template (key or persisted id)")
	cmd.Flags().StringVar(&clientID, "client-id", "", "client id (required)")
	cmd.Flags().StringVar(&clientName, "client-name", "", "client business name (required)")
	cmd.Flags().StringVar(&botID, "bot-id", "", "bot id (defaults to <client-id>_main)")
	cmd.Flags().StringVar(&bookingURL, "external-booking-url", "", "external booking page; switches the bot to redirect-only booking")
	cmd.Flags().StringVar(&preset, "preset", "", "behavior preset (defaults to support_lead_focused)")
	cmd.Flags().StringVar(&plan, "plan", "", "billing plan")
	cmd.Flags().StringVar(&timezone, "timezone", "", "client timezone")
	cmd.Flags().StringVar(&contactPhone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&contactEmail, "email", "", "contact email")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}
