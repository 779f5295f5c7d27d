package session

import (
	"time"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/models"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/repository"

	"go.uber.org/zap"
)

// sampleLog is the week of demo data every new session starts with.
type sampleEntry struct {
	category models.ActivityCategory
	quantity float64
	daysAgo  int
}

var sampleLog = []sampleEntry{
	{models.CategoryElectricity, 120, 6},
	{models.CategoryCar, 45, 5},
	{models.CategoryFood, 3, 4},
	{models.CategoryElectricity, 95, 3},
	{models.CategoryBus, 30, 2},
	{models.CategoryElectronics, 1, 1},
	{models.CategoryElectricity, 110, 0},
}

func seedSampleLog(store *repository.LogStore, logger *zap.Logger) {
	now := time.Now()
	for _, s := range sampleLog {
		at := now.AddDate(0, 0, -s.daysAgo)
		if _, err := store.AppendAt(s.category, s.quantity, at); err != nil {
			// The sample table is static and valid; this only trips if the
			// table and the factor set drift apart.
			logger.Error("Failed to seed sample entry",
				zap.String("category", string(s.category)),
				zap.Error(err),
			)
		}
	}
}
