package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkStrainSpike BookmarkType = "strain_spike"
	BookmarkReveal      BookmarkType = "reveal"
	BookmarkPinDrift    BookmarkType = "pin_drift"
	BookmarkSettled     BookmarkType = "settled"
)

// Bookmark marks a notable moment in a run.
type Bookmark struct {
	Type        BookmarkType
	Tick        int64
	Description string
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector watches closed stats windows for notable changes.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	drifting     bool // pin drift already reported
	settledCount int  // consecutive windows with steady motion
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for settled detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkPinDrift(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if bd.historyFull || bd.historyIdx > 0 {
		// Strain spike: peak strain > 2x rolling average
		if b := bd.checkStrainSpike(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Reveal: visible share > 2x rolling average
		if b := bd.checkReveal(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}

		// Settled: steady mean speed over 5+ windows
		if b := bd.checkSettled(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// getHistory returns stored windows oldest first.
func (bd *BookmarkDetector) getHistory() []WindowStats {
	if !bd.historyFull {
		return bd.history[:bd.historyIdx]
	}
	out := make([]WindowStats, 0, bd.historySize)
	out = append(out, bd.history[bd.historyIdx:]...)
	return append(out, bd.history[:bd.historyIdx]...)
}

func (bd *BookmarkDetector) checkStrainSpike(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.PeakStrain
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.PeakStrain > avg*2.0 && stats.PeakStrain > 0.05 {
		return &Bookmark{
			Type:        BookmarkStrainSpike,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Peak strain %.3f is %.1fx average (%.3f)", stats.PeakStrain, stats.PeakStrain/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkReveal(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.VisibleFraction
	}
	avg := total / float64(len(history))

	if stats.VisibleFraction > avg*2.0 && stats.VisibleFraction > 0.1 {
		return &Bookmark{
			Type:        BookmarkReveal,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Visible share %.0f%% up from average %.0f%%", stats.VisibleFraction*100, avg*100),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkPinDrift(stats WindowStats) *Bookmark {
	if stats.PinDrift == 0 {
		bd.drifting = false
		return nil
	}
	if bd.drifting {
		return nil
	}
	bd.drifting = true
	return &Bookmark{
		Type:        BookmarkPinDrift,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Pinned point %.3g away from its anchor", stats.PinDrift),
	}
}

func (bd *BookmarkDetector) checkSettled(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}

	recent := history[len(history)-4:]
	var sum float64
	for _, h := range recent {
		sum += h.SpeedMean
	}
	mean := sum / 4

	var variance float64
	for _, h := range recent {
		d := h.SpeedMean - mean
		variance += d * d
	}
	variance /= 4

	// CV^2 < 0.04 means CV < 0.2
	if mean > 0 && variance/(mean*mean) < 0.04 {
		bd.settledCount++
	} else {
		bd.settledCount = 0
	}

	if bd.settledCount == 5 { // trigger exactly once per settled stretch
		return &Bookmark{
			Type:        BookmarkSettled,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Motion steady at mean speed %.2e over 5+ windows", mean),
		}
	}
	return nil
}
