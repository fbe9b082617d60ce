package color_cache

import (
	"sync"
	"time"

	"github.com/RBazelais/BoltBucket/models"
)

const TTL = 5 * time.Minute

// The colors table only changes when the seed command runs, so the listing is
// cached in-process for a short TTL instead of hitting Postgres per request.

type listEntry struct {
	colors    []models.Color
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetList() ([]models.Color, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && time.Since(listCache.fetchedAt) < TTL {
		return listCache.colors, true
	}
	return nil, false
}

func SetList(colors []models.Color) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{colors: colors, fetchedAt: time.Now()}
}

// Invalidate drops the cached listing (used by tests and after reseeding).
func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()
}
