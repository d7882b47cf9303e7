package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/ecs"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Session    string
	Duration   time.Duration
	Games      int
	Seed       uint64
	Randomizer string

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Totals         Totals
	Systems        *ecs.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Bench Report

## Run Configuration
- **Session:** {{.Session}}
- **Run Duration:** {{.Duration}}
- **Concurrent Games:** {{.Games}}
- **Seed:** {{.Seed}}
- **Randomizer:** {{.Randomizer}}

## Game Results
- **Finished Games:** {{.Totals.Games}}
- **Pieces Spawned:** {{.Totals.Pieces}}
- **Pieces Locked:** {{.Totals.Locks}}
- **Lines Cleared:** {{.Totals.Lines}}
- **Total Score:** {{.Totals.Score}}
- **Best Score:** {{.Totals.BestScore}}

### Spawns by Shape
| Shape | Count | Share |
|---|---|---|
{{- range $shape, $n := .Totals.Spawns}}
| {{shape $shape}} | {{$n}} | {{pct $n $.Totals.Pieces}} |
{{- end}}

### Clears by Size
| Lines | Count |
|---|---|
{{- range $lines, $n := .Totals.Clears}}{{if $lines}}
| {{$lines}} | {{$n}} |{{end}}
{{- end}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{simulated .TotalUpdates}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

### Systems
| System | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"shape": func(i int) string {
			return tetris.Shape(i).String()
		},
		"pct": func(n, total int) string {
			if total == 0 {
				return "0.0%"
			}
			return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
		},
		"simulated": func(updates int64) time.Duration {
			return time.Duration(updates) * Frame
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
