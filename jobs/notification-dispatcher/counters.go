package main

import "time"

// DispatchCounter tracks success and failure counts of one dispatch run.
type DispatchCounter struct {
	Success   int
	Failed    int
	startedAt time.Time
	Duration  int64
}

func InitDispatchCounter() *DispatchCounter {
	return &DispatchCounter{
		startedAt: time.Now(),
	}
}

func (c *DispatchCounter) IncreaseCounter(success bool) {
	if success {
		c.Success++
	} else {
		c.Failed++
	}
}

func (c *DispatchCounter) Stop() {
	c.Duration = time.Since(c.startedAt).Milliseconds()
}
