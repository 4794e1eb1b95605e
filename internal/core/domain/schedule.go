package domain

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultIntervalKm applies to any usage type missing from serviceIntervals.
const DefaultIntervalKm = 5000

// MaxKm is the largest odometer value accepted from clients; the km validate
// tags carry the same literal. MaxKm plus any interval fits an INTEGER column.
const MaxKm = 10000000

var serviceIntervals = map[UsageType]int{
	UsageHarian:   3000,
	UsageKomuter:  4000,
	UsageTouring:  6000,
	UsageOlahraga: 2000,
	UsageJarang:   8000,
}

var kmPrinter = message.NewPrinter(language.Indonesian)

// IntervalKm returns the service interval for a usage type.
func IntervalKm(usage UsageType) int {
	if interval, ok := serviceIntervals[usage]; ok {
		return interval
	}
	return DefaultIntervalKm
}

// NextDueKm is the odometer reading at which the next periodic service is due
// after a service posted at postedKm.
func NextDueKm(postedKm int, usage UsageType) int {
	return postedKm + IntervalKm(usage)
}

// KmReminderDescription renders e.g. "Servis berkala 18.000 KM".
func KmReminderDescription(dueKm int) string {
	return kmPrinter.Sprintf("Servis berkala %d KM", dueKm)
}

// NewKmReminder builds the open km reminder that follows a service posted at
// postedKm.
func NewKmReminder(motorcycleID uuid.UUID, postedKm int, usage UsageType) *Reminder {
	dueKm := NextDueKm(postedKm, usage)
	return &Reminder{
		ID:           uuid.New(),
		MotorcycleID: motorcycleID,
		Type:         KmBased,
		DueKm:        &dueKm,
		IsCompleted:  false,
		Description:  KmReminderDescription(dueKm),
	}
}
