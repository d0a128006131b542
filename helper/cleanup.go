package helper

import (
	"context"
	"log"
	"time"

	"catering_manager/repository"

	"github.com/robfig/cron/v3"
)

// StartAvailabilityCleanup usuwa co noc przeterminowane wpisy kalendarza
// dostępności. Zwraca scheduler, żeby main mógł go zatrzymać przy wyłączaniu.
func StartAvailabilityCleanup(availability repository.AvailabilityRepository) *cron.Cron {
	scheduler := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := scheduler.AddFunc("30 2 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		today := repository.DateOnly(time.Now())
		removed, err := availability.DeleteBefore(ctx, today)
		if err != nil {
			log.Println("failed to purge expired availability:", err)
			return
		}
		if removed > 0 {
			log.Printf("Usunięto %d przeterminowanych wpisów dostępności", removed)
		}
	})
	if err != nil {
		log.Println("failed to schedule availability cleanup:", err)
		return nil
	}

	scheduler.Start()
	log.Println("Availability cleanup scheduler started")
	return scheduler
}
