package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/termlink/internal/app"
	"github.com/heartmarshall/termlink/internal/service/glossary"
)

func linkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "link <term name>",
		Short: "Print the linked definition of one term as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd.Context(), opts)
			if err != nil {
				return err
			}

			rendered, err := e.svc.RenderByName(cmd.Context(), glossary.RenderByNameInput{Name: strings.Join(args, " ")})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rendered)
		},
	}
}

func renderCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print every linked definition as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), opts)
			if err != nil {
				return err
			}

			rendered, err := e.svc.RenderAll(cmd.Context())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, r := range rendered {
				if err := enc.Encode(r); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
			}
			return nil
		},
	}
}

func backlinksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backlinks <term name>",
		Short: "List the terms whose definitions link to a term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd.Context(), opts)
			if err != nil {
				return err
			}

			target, err := e.catalog.FindByName(strings.Join(args, " "))
			if err != nil {
				return err
			}

			terms, err := e.svc.Backlinks(cmd.Context(), glossary.RenderInput{TermID: target.ID})
			if err != nil {
				return err
			}

			for _, t := range terms {
				fmt.Fprintln(cmd.OutOrStdout(), t.Name)
			}
			return nil
		},
	}
}

func checkCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Import the catalog and print the import report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(cmd.Context(), opts)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(e.report); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			if e.report.Failed > 0 {
				return fmt.Errorf("catalog has %d invalid records", e.report.Failed)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
