package app

import (
	"context"
	"log"
	"time"

	"github.com/vitrinedev/vitrine/internal/store"
)

const defaultRefreshInterval = 5 * time.Minute

// StartRefresher launches a background goroutine that reloads the
// catalog at a fixed cadence. It returns immediately; the first load
// happens right away so the UI has data as soon as the backend answers.
func StartRefresher(ctx context.Context, st *store.Store, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(ctx, st)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func refresh(ctx context.Context, st *store.Store) {
	if err := st.LoadProducts(ctx); err != nil {
		log.Printf("product refresh failed: %v", err)
		return
	}
	if err := st.LoadCategories(ctx); err != nil {
		log.Printf("category refresh failed: %v", err)
	}
}
