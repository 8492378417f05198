package model

import "math"

// Counters are the dashboard figures.
type Counters struct {
	Incomplete        int
	Completed         int
	ActiveProjects    int
	ProductivityScore int // percent of tasks completed, 0..100
}

func ComputeCounters(tasks []Task, projects []Project) Counters {
	var c Counters
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Incomplete++
		}
	}
	for _, p := range projects {
		if p.Status == StatusActive {
			c.ActiveProjects++
		}
	}
	if total := len(tasks); total > 0 {
		c.ProductivityScore = int(math.Round(float64(c.Completed) / float64(total) * 100))
	}
	return c
}
