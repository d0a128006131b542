package helper

import (
	"context"
	"log"
	"time"

	"catering_manager/model"
	"catering_manager/repository"
	"catering_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

// StartDeliveryReminder uruchamia codzienny job (08:00), który wysyła
// przypomnienia do zaakceptowanych zamówień z dostawą w ciągu najbliższej doby.
func StartDeliveryReminder(orders repository.OrderRepository, notifier *utils.EmailNotifier) gocron.Scheduler {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		log.Println("failed to create reminder scheduler:", err)
		return nil
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(func() {
			sendDueReminders(orders, notifier)
		}),
	)
	if err != nil {
		log.Println("failed to schedule delivery reminders:", err)
		return nil
	}

	s.Start()
	log.Println("Delivery reminder scheduler started")
	return s
}

func sendDueReminders(orders repository.OrderRepository, notifier *utils.EmailNotifier) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	due, err := orders.ListByStatusDueBetween(ctx, model.StatusAccepted, now, now.Add(24*time.Hour))
	if err != nil {
		log.Println("failed to list orders due for reminder:", err)
		return
	}

	for i := range due {
		notifier.DeliveryReminder(&due[i])
	}
	if len(due) > 0 {
		log.Printf("Wysłano %d przypomnień o dostawie", len(due))
	}
}
