package procstats

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats represents process resource usage statistics
type Stats struct {
	CPUPercent  float64
	MemoryBytes uint64
}

// Self returns CPU and memory usage of the monitor process itself, shown in
// the TUI header. Failures yield zero stats; the display shows a dash.
func Self() Stats {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return Stats{}
	}

	stats := Stats{}

	if cpu, err := proc.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	}

	if mem, err := proc.MemoryInfo(); err == nil && mem != nil {
		stats.MemoryBytes = mem.RSS
	}

	return stats
}

// FormatMemory formats bytes into human-readable form (B, Kb, Mb, Gb)
func FormatMemory(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%dB", bytes)
	}

	suffixes := []string{"Kb", "Mb", "Gb"}
	value := float64(bytes)

	for i, suffix := range suffixes {
		value /= float64(unit)
		if value < float64(unit) || i == len(suffixes)-1 {
			if value >= 10 {
				return fmt.Sprintf("%.0f%s", value, suffix)
			}

			return fmt.Sprintf("%.1f%s", value, suffix)
		}
	}

	return fmt.Sprintf("%.0fTb", value)
}

// FormatUptime formats a duration as compact uptime (1h02m, 5m09s, 42s)
func FormatUptime(d time.Duration) string {
	d = d.Round(time.Second)

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}

	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}

	return fmt.Sprintf("%ds", s)
}
