package engine

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/ivlev/scene2motn/internal/system"
)

// Report formats the performance summary printed after an export.
func (r *Result) Report(build string, rss uint64) string {
	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Export: %s\n"+
			"Total Time: %.3fs\n"+
			"Sampling: %.3fs\n"+
			"Reduction: %.3fs\n"+
			"Writing: %.3fs\n"+
			"Frames: %d | Objects: %d | Samples: %d | Keys: %d\n"+
			"Memory (RSS): %.1f MiB\n"+
			"----------------------------\n",
		build, r.ExportID,
		r.Timings.Total.Seconds(), r.Timings.Sample.Seconds(), r.Timings.Reduce.Seconds(), r.Timings.Write.Seconds(),
		r.Frames(), r.Written(), r.Samples, r.Keys,
		float64(rss)/(1<<20),
	)
}

// StatsLine formats one benchmark log entry.
func (r *Result) StatsLine(build, input string, now time.Time) string {
	return fmt.Sprintf("[%s] Build: %s | Input: %s | Frames: %d | Objects: %d | Keys: %d | Total: %.3fs | Sample: %.3fs | Reduce: %.3fs",
		now.Format("2006-01-02 15:04:05"),
		build,
		filepath.Base(input),
		r.Frames(),
		r.Written(),
		r.Keys,
		r.Timings.Total.Seconds(),
		r.Timings.Sample.Seconds(),
		r.Timings.Reduce.Seconds(),
	)
}

// WriteStats prints the report to out and appends a line to logPath.
func WriteStats(out io.Writer, res *Result, build, input, logPath string) error {
	rss, err := system.ProcessMemory()
	if err != nil {
		rss = 0
	}
	if _, err := io.WriteString(out, res.Report(build, rss)); err != nil {
		return err
	}
	if logPath == "" {
		return nil
	}
	if err := system.AppendStatsLine(logPath, res.StatsLine(build, input, time.Now())); err != nil {
		return fmt.Errorf("append %s: %w", logPath, err)
	}
	return nil
}
