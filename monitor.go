package main

import (
	"context"
	"log"
	"time"

	"fieldvision/models"

	"go.mongodb.org/mongo-driver/bson"
)

// monitorStaleAfter is how old an analysis may get before the monitor
// schedules a fresh run for its field.
const monitorStaleAfter = 24 * time.Hour

// runMonitor periodically re-analyzes fields whose latest analysis has gone
// stale, so dashboards stay current without anyone pressing the button.
// It exits when ctx is cancelled.
func (a *App) runMonitor(ctx context.Context, interval time.Duration) {
	log.Printf("field monitor running every %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("field monitor stopped")
			return
		case <-ticker.C:
			if err := a.monitorPass(ctx); err != nil {
				log.Printf("monitor pass: %v", err)
			}
		}
	}
}

// monitorPass analyzes every stale field once. Per-field failures are
// logged and skipped; one broken field must not starve the rest.
func (a *App) monitorPass(ctx context.Context) error {
	passCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().Add(-monitorStaleAfter)
	cur, err := a.fields.Find(passCtx, bson.M{"$or": []bson.M{
		{"lastAnalyzedAt": bson.M{"$lt": cutoff}},
		{"lastAnalyzedAt": bson.M{"$exists": false}},
	}})
	if err != nil {
		return err
	}
	defer cur.Close(passCtx)

	var stale []models.Field
	if err := cur.All(passCtx, &stale); err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}
	log.Printf("monitor: %d stale field(s)", len(stale))

	for _, field := range stale {
		if passCtx.Err() != nil {
			return passCtx.Err()
		}
		if _, err := a.analyzeAndStore(passCtx, field); err != nil {
			log.Printf("monitor: analyze field %s (%s): %v", field.ID.Hex(), field.Name, err)
		}
	}
	return nil
}
