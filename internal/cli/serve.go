package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/icdc-io/rbac-go/internal/accounts"
	"github.com/icdc-io/rbac-go/internal/authz"
	"github.com/icdc-io/rbac-go/internal/policy"
	"github.com/icdc-io/rbac-go/internal/server"
)

func cmdServe() *cobra.Command {
	var listen string
	var policyPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the RBAC demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if policyPath != "" {
				cfg.PolicyPath = policyPath
			}

			// startup-fatal: never serve without a loaded policy
			store, err := policy.Load(cfg.PolicyPath)
			if err != nil {
				return fmt.Errorf("load policy: %w", err)
			}

			registry := accounts.NewMemoryStore()
			for _, seed := range cfg.Accounts {
				registry.Add(seed.Name, seed.Roles...)
			}

			a := authz.New(store, registry, authz.Config{
				UseOperatorGroups: cfg.UseOperatorGroups,
			})
			h := server.BuildRouter(
				server.Deps{Authorizer: a},
				server.Options{EnableCORS: cfg.EnableCORS},
			)

			slog.Info("listening",
				"addr", cfg.Listen,
				"policy", cfg.PolicyPath,
				"roles", store.Roles().Names(),
				"accounts", len(cfg.Accounts),
			)
			return http.ListenAndServe(cfg.Listen, h)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&policyPath, "policy", "", "policy file path (overrides config)")
	return cmd
}
