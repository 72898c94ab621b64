package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/validation"
	"footprint-workers/pkg/registry"
)

func registryCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect and maintain the activity registry",
	}
	cmd.PersistentFlags().StringVar(&path, "path", registry.DefaultPath, "path to the registry file")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TASK TYPE\tVERSION\tSTATUS\tTIMEOUT\tRETRIES")
			for _, a := range reg.Activities {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", a.TaskType, a.Version, a.ImplementationStatus, a.Timeout, a.Retries)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the registry file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			if err := validateRegistry(reg); err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}
			cmd.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-status [id] [status]",
		Short: "Update an activity's implementation status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return fmt.Errorf("failed to load registry: %w", err)
			}
			if err := reg.SetStatus(args[0], args[1]); err != nil {
				return err
			}
			if err := registry.Save(reg, path); err != nil {
				return err
			}
			cmd.Printf("Updated activity %s, status %s\n", args[0], args[1])
			return nil
		},
	})

	return cmd
}

// validateRegistry adds schema and error code checks on top of the
// registry's own structural validation.
func validateRegistry(reg *registry.ActivityRegistry) error {
	if err := reg.Validate(); err != nil {
		return err
	}

	for _, a := range reg.Activities {
		for name, schema := range map[string]map[string]interface{}{"inputSchema": a.InputSchema, "outputSchema": a.OutputSchema} {
			if len(schema) == 0 {
				continue
			}
			raw, err := json.Marshal(schema)
			if err != nil {
				return fmt.Errorf("activity %s: %s: %w", a.ID, name, err)
			}
			if _, err := validation.Compile(string(raw)); err != nil {
				return fmt.Errorf("activity %s: %s: %w", a.ID, name, err)
			}
		}
		for _, code := range a.ErrorCodes {
			if !errors.IsKnownErrorCode(errors.ErrorCode(code)) {
				return fmt.Errorf("activity %s lists unknown error code %s", a.ID, code)
			}
		}
	}
	return nil
}
