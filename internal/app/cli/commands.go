package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandWatch CommandType = iota
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	File     string
	Keywords []string
	IPs      []string
	Regex    string
	Excludes []string
	Follow   bool
	TUI      bool
	Output   string
	Capacity int
}

// rootFlags holds raw flag values for the root command
type rootFlags struct {
	version bool
	filter  string
	ips     string
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandWatch}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(buildVersionCommand(result))

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	result.Keywords = splitList(flags.filter)
	result.IPs = splitList(flags.ips)

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logwatch",
		Short: "Firewall and IDS log analyzer with live tailing",
		Long: `Logwatch analyzes system, firewall or IDS logs (UFW, iptables,
Suricata, Snort), filtering lines by keyword, IP or regex, with static
review or real-time tailing and optional CSV export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandWatch
		},
	}

	cmd.Flags().StringVarP(&result.File, "file", "f", "", "Log file path")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "Comma-separated keywords to match")
	cmd.Flags().StringVar(&flags.ips, "include-ips", "", "Comma-separated IPs to match")
	cmd.Flags().StringVar(&result.Regex, "regex", "", "Regex pattern to match lines")
	cmd.Flags().StringArrayVar(&result.Excludes, "exclude", nil, "Glob pattern suppressing matching lines (repeatable)")
	cmd.Flags().BoolVar(&result.Follow, "tail", false, "Follow the log file in real time")
	cmd.Flags().BoolVar(&result.TUI, "tui", false, "Display output in a terminal UI (tail mode only)")
	cmd.Flags().StringVar(&result.Output, "output", "", "Save matched lines to this CSV file")
	cmd.Flags().IntVar(&result.Capacity, "capacity", 0, "Visible row capacity (default from config)")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}
}

// splitList splits a comma-separated value, dropping empty entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
