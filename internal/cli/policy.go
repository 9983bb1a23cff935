package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icdc-io/rbac-go/internal/policy"
)

func cmdPolicy() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect and validate policy documents",
	}
	cmd.AddCommand(cmdPolicyValidate(), cmdPolicyShow())
	return cmd
}

func policyPathArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return "", err
	}
	return cfg.PolicyPath, nil
}

func cmdPolicyValidate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Load a policy document and report its role set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := policyPathArg(args)
			if err != nil {
				return err
			}
			store, err := policy.Load(path)
			if err != nil {
				return err
			}
			names := store.Roles().Names()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d roles (%s)\n", len(names), strings.Join(names, ", "))
			return nil
		},
	}
}

func cmdPolicyShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show [path]",
		Short: "Print the parsed policy back as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := policyPathArg(args)
			if err != nil {
				return err
			}
			store, err := policy.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), store.Describe())
			return nil
		},
	}
}
