// Package statistics computes number frequency and gap tables over
// historical draws. Generators consume these tables; results are memoized
// because several strategies recompute the same training window.
package statistics

import (
	"fmt"
	"sort"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// FrequencyTable holds recency-weighted appearance counts per number
type FrequencyTable struct {
	Numbers map[int]float64
	Stars   map[int]float64
}

// GapTable holds, per number, how many draws have passed since it last
// appeared. Numbers never seen carry a gap equal to the window length.
type GapTable struct {
	Numbers map[int]int
	Stars   map[int]int
}

// Analyzer computes statistics for one game's number ranges
type Analyzer struct {
	def   *game.Definition
	cache *cache.Cache
}

// NewAnalyzer creates an analyzer with a short-lived result cache
func NewAnalyzer(def *game.Definition) *Analyzer {
	return &Analyzer{
		def:   def,
		cache: cache.New(10*time.Minute, 20*time.Minute),
	}
}

// Frequencies computes recency-weighted frequencies over the given draws.
// recentWeight in [0,1] controls how strongly newer draws are favored:
// 0 gives a flat count, 1 makes the newest draw weigh twice the oldest.
func (a *Analyzer) Frequencies(draws []*models.Draw, recentWeight float64) *FrequencyTable {
	key := a.cacheKey("freq", draws, recentWeight)
	if cached, found := a.cache.Get(key); found {
		if table, ok := cached.(*FrequencyTable); ok {
			return table
		}
	}

	table := &FrequencyTable{
		Numbers: make(map[int]float64),
		Stars:   make(map[int]float64),
	}

	sorted := sortByDateDesc(draws)
	n := len(sorted)
	for i, draw := range sorted {
		weight := 1.0
		if n > 1 {
			weight = 1.0 + recentWeight*float64(n-1-i)/float64(n-1)
		}
		for _, num := range draw.Numbers {
			table.Numbers[num] += weight
		}
		for _, star := range draw.Stars {
			table.Stars[star] += weight
		}
	}

	a.cache.Set(key, table, cache.DefaultExpiration)
	return table
}

// Gaps computes draws-since-last-seen for every number in range
func (a *Analyzer) Gaps(draws []*models.Draw) *GapTable {
	key := a.cacheKey("gaps", draws, 0)
	if cached, found := a.cache.Get(key); found {
		if table, ok := cached.(*GapTable); ok {
			return table
		}
	}

	table := &GapTable{
		Numbers: make(map[int]int),
		Stars:   make(map[int]int),
	}
	n := len(draws)
	for v := 1; v <= a.def.Spec.MainMax; v++ {
		table.Numbers[v] = n
	}
	for v := 1; v <= a.def.Spec.StarMax; v++ {
		table.Stars[v] = n
	}

	sorted := sortByDateDesc(draws)
	for i, draw := range sorted {
		for _, num := range draw.Numbers {
			if table.Numbers[num] == n {
				table.Numbers[num] = i
			}
		}
		for _, star := range draw.Stars {
			if table.Stars[star] == n {
				table.Stars[star] = i
			}
		}
	}

	a.cache.Set(key, table, cache.DefaultExpiration)
	return table
}

// TopNumbers returns the n highest-weighted main numbers, best first.
// Ties resolve by ascending number so the ordering is deterministic.
func (t *FrequencyTable) TopNumbers(n int) []int {
	return topKeys(t.Numbers, n, true)
}

// BottomNumbers returns the n lowest-weighted main numbers
func (t *FrequencyTable) BottomNumbers(n int) []int {
	return topKeys(t.Numbers, n, false)
}

// TopStars returns the n highest-weighted secondary numbers
func (t *FrequencyTable) TopStars(n int) []int {
	return topKeys(t.Stars, n, true)
}

func topKeys(weights map[int]float64, n int, desc bool) []int {
	keys := make([]int, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		wi, wj := weights[keys[i]], weights[keys[j]]
		if wi != wj {
			if desc {
				return wi > wj
			}
			return wi < wj
		}
		return keys[i] < keys[j]
	})
	if n > len(keys) {
		n = len(keys)
	}
	return keys[:n]
}

// cacheKey fingerprints a training window by its bounds and size. Draws
// are immutable, so bounds plus length identify the window.
func (a *Analyzer) cacheKey(kind string, draws []*models.Draw, param float64) string {
	if len(draws) == 0 {
		return fmt.Sprintf("%s:%s:empty:%.2f", a.def.Name, kind, param)
	}
	newest, oldest := draws[0].Date, draws[0].Date
	for _, d := range draws {
		if d.Date.After(newest) {
			newest = d.Date
		}
		if d.Date.Before(oldest) {
			oldest = d.Date
		}
	}
	return fmt.Sprintf("%s:%s:%d:%d:%d:%.2f", a.def.Name, kind, len(draws), newest.Unix(), oldest.Unix(), param)
}

func sortByDateDesc(draws []*models.Draw) []*models.Draw {
	sorted := make([]*models.Draw, len(draws))
	copy(sorted, draws)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
