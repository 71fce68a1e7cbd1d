package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/payweek/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration in effect after defaults, the config file and
PAYWEEK_* environment variables are applied.

Example:
  payweek config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", a.configPath)
			printConfig(cmd.OutOrStdout(), a.config)
			return nil
		},
	}

	cmd.AddCommand(a.configInitCmd())
	cmd.AddCommand(a.configEditCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", a.configPath)
			}

			if err := config.Default().SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", a.configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func (a *App) configEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		Long: `Prompt for each setting, keeping the current value when the answer is
empty, then validate and save the config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			// Edit a copy so a failed validation leaves the running config intact.
			cfg := *a.config
			cfg.Payroll.Timezone = promptValue(reader, out, "Time zone", cfg.Payroll.Timezone)
			threshold := promptValue(reader, out, "Overtime threshold (hours)", FormatHours(cfg.Payroll.OvertimeThreshold))
			indent := promptValue(reader, out, "JSON indent (0 for compact)", strconv.Itoa(cfg.Output.Indent))
			cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)

			var err error
			if cfg.Payroll.OvertimeThreshold, err = strconv.ParseFloat(threshold, 64); err != nil {
				return fmt.Errorf("overtime threshold: %w", err)
			}
			if cfg.Output.Indent, err = strconv.Atoi(indent); err != nil {
				return fmt.Errorf("indent: %w", err)
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if err := cfg.SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			*a.config = cfg

			fmt.Fprintln(out, "\nConfiguration saved!")
			return nil
		},
	}
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Current configuration:")
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[payroll]")
	fmt.Fprintf(w, "  timezone           = %s\n", cfg.Payroll.Timezone)
	fmt.Fprintf(w, "  overtime_threshold = %s\n", FormatHours(cfg.Payroll.OvertimeThreshold))
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path            = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[output]")
	fmt.Fprintf(w, "  indent             = %d\n", cfg.Output.Indent)
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}
