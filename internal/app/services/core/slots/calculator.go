package slots

import (
	"time"

	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/dto/responses"
	"docpoint-service/internal/pkg/utils"
)

// Calculate builds the rolling availability window for one doctor: seven days
// starting today, half-hour steps between 10:00 and 21:00 (exclusive end).
// For today the window starts at the next free half hour instead of 10:00;
// once the clock passes 20:30 today simply yields no slots. Slots already in
// the booked map are filtered out.
func Calculate(now time.Time, booked map[string][]string) ([]responses.AvailableDay, map[string][]responses.Slot) {
	days := make([]responses.AvailableDay, 0, constvars.SlotWindowDays)
	slotsByDay := make(map[string][]responses.Slot, constvars.SlotWindowDays)

	for i := 0; i < constvars.SlotWindowDays; i++ {
		day := now.AddDate(0, 0, i)
		endTime := time.Date(day.Year(), day.Month(), day.Day(), constvars.SlotServiceEndHour, 0, 0, 0, day.Location())

		var cursor time.Time
		if i == 0 {
			hour := constvars.SlotServiceStartHour
			if now.Hour() > constvars.SlotServiceStartHour {
				hour = now.Hour() + 1
			}
			minute := 0
			if now.Minute() > constvars.SlotStepMinutes {
				minute = constvars.SlotStepMinutes
			}
			cursor = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
		} else {
			cursor = time.Date(day.Year(), day.Month(), day.Day(), constvars.SlotServiceStartHour, 0, 0, 0, day.Location())
		}

		dayKey := utils.SlotDayKey(day)
		daySlots := make([]responses.Slot, 0)

		for cursor.Before(endTime) {
			timeLabel := utils.SlotTimeLabel(cursor)
			if !isBooked(booked, dayKey, timeLabel) {
				daySlots = append(daySlots, responses.Slot{
					DateTime:  cursor.Format(time.RFC3339),
					TimeLabel: timeLabel,
				})
			}
			cursor = cursor.Add(time.Duration(constvars.SlotStepMinutes) * time.Minute)
		}

		days = append(days, responses.AvailableDay{
			DayKey: dayKey,
			Date:   day.Format(constvars.SlotDateInputFormat),
		})
		slotsByDay[dayKey] = daySlots
	}

	return days, slotsByDay
}

// IsFree reports whether one specific canonical slot is open.
func IsFree(booked map[string][]string, dayKey, timeLabel string) bool {
	return !isBooked(booked, dayKey, timeLabel)
}

// WithinServiceWindow reports whether an instant lands on a valid slot
// boundary inside the bookable window.
func WithinServiceWindow(t time.Time) bool {
	if t.Hour() < constvars.SlotServiceStartHour || t.Hour() >= constvars.SlotServiceEndHour {
		return false
	}
	return t.Minute()%constvars.SlotStepMinutes == 0
}

func isBooked(booked map[string][]string, dayKey, timeLabel string) bool {
	for _, label := range booked[dayKey] {
		if label == timeLabel {
			return true
		}
	}
	return false
}
