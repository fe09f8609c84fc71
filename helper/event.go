package helper

import (
	"log"
	"theatre_manager/constants"
	"theatre_manager/database"
	"theatre_manager/model"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var eventScheduler gocron.Scheduler

func AutoUpdateEventStatus() {
	db := database.DB
	today := time.Now().Truncate(24 * time.Hour)

	var events []model.Event
	if err := db.Find(&events).Error; err != nil {
		log.Printf("event status scan failed: %v", err)
		return
	}

	for _, event := range events {
		updated := false

		startDate := event.StartDate.Truncate(24 * time.Hour)
		if !today.Before(startDate) && event.Status == constants.EVENT_STATUS_UPCOMING {
			event.Status = constants.EVENT_STATUS_ONGOING
			updated = true
		}

		endDate := event.EndDate.Truncate(24 * time.Hour)
		if today.After(endDate) && event.Status == constants.EVENT_STATUS_ONGOING {
			event.Status = constants.EVENT_STATUS_ENDED
			updated = true
		}

		if updated {
			if err := db.Save(&event).Error; err != nil {
				log.Printf("failed to update status of event %q: %v", event.Title, err)
			} else {
				log.Printf("event %q moved to %s", event.Title, event.Status)
			}
		}
	}
}

func StartEventStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	eventScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateEventStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("event status scheduler started (daily)")
}

func StopEventStatusScheduler() {
	if eventScheduler != nil {
		if err := eventScheduler.Shutdown(); err != nil {
			log.Printf("event status scheduler shutdown: %v", err)
		}
	}
}
