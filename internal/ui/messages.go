package ui

import (
	"time"

	"mirrorpick/internal/domain"
)

// catalogLoadedMsg carries the merged catalog once every source resolved
type catalogLoadedMsg struct {
	entries []domain.CatalogEntry
}

// catalogFailedMsg reports that at least one source could not be loaded
type catalogFailedMsg struct {
	err error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct {
	at time.Time
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
