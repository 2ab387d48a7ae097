package cli

import (
	"fmt"

	"logwatch/internal/config"
)

func (c *cli) printVersion() {
	fmt.Printf("logwatch v%s\n", config.Version)
}

func (c *cli) printHelp() {
	fmt.Println(titleStyle.Render("logwatch") + " - firewall and IDS log analyzer with live tailing")
	fmt.Println()

	fmt.Println(titleStyle.Render("Usage:"))
	fmt.Println("  logwatch -f <file> [flags]")
	fmt.Println("  logwatch version")
	fmt.Println()

	fmt.Println(titleStyle.Render("Flags:"))
	fmt.Println("  -f, --file <path>        Log file to analyze")
	fmt.Println("      --filter <list>      Comma-separated keywords to match")
	fmt.Println("      --include-ips <list> Comma-separated IPs to match")
	fmt.Println("      --regex <pattern>    Regex pattern to match lines")
	fmt.Println("      --exclude <glob>     Suppress lines matching this glob (repeatable)")
	fmt.Println("      --tail               Follow the file in real time")
	fmt.Println("      --tui                Terminal UI (requires --tail)")
	fmt.Println("      --output <path>      Save matched lines to this CSV file")
	fmt.Println("      --capacity <n>       Visible row capacity")
	fmt.Println("  -v, --version            Show version information")
	fmt.Println()

	fmt.Println(titleStyle.Render("Examples:"))
	fmt.Println("  logwatch -f /var/log/ufw.log --filter BLOCK,DROP")
	fmt.Println("  logwatch -f /var/log/suricata/fast.log --tail --tui")
	fmt.Println("  logwatch -f auth.log --regex 'Failed password' --output failed.csv")
	fmt.Println()

	fmt.Println(dimStyle.Render("In tail mode, press 's' to save the current view to a timestamped CSV."))
}
