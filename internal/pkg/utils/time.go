package utils

import (
	"fmt"
	"time"

	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"
)

// SlotDayKey renders the day portion of a slot the way it is stored in the
// doctor's booked-slots map: day_month_year without zero padding.
func SlotDayKey(t time.Time) string {
	return fmt.Sprintf(constvars.SlotDayKeyFormat, t.Day(), int(t.Month()), t.Year())
}

// SlotTimeLabel renders the 12-hour clock label stored alongside the day key.
func SlotTimeLabel(t time.Time) string {
	return t.Format(constvars.SlotTimeLabelFormat)
}

// ParseSlotDate accepts either an ISO date (2025-07-25) or a stored day key
// (25_7_2025) and returns midnight of that day in local time.
func ParseSlotDate(raw string) (time.Time, error) {
	if t, err := time.Parse(constvars.SlotDateInputFormat, raw); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
	}

	var day, month, year int
	if _, err := fmt.Sscanf(raw, constvars.SlotDayKeyFormat, &day, &month, &year); err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, exceptions.ErrCannotParseTime(fmt.Errorf("day key %q out of range", raw))
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// ParseSlotTime accepts either a 24-hour clock (16:00) or a stored 12-hour
// label (04:00 PM).
func ParseSlotTime(raw string) (time.Time, error) {
	if t, err := time.Parse(constvars.SlotTimeLabelFormat, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(constvars.SlotTimeInputFormat, raw)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return t, nil
}

// CanonicalSlot normalizes any accepted date/time pair into the canonical
// day key, time label and absolute instant. Conflict checks and the unique
// slot index only ever see canonical values.
func CanonicalSlot(rawDate, rawTime string) (dayKey, timeLabel string, scheduledAt time.Time, err error) {
	day, err := ParseSlotDate(rawDate)
	if err != nil {
		return "", "", time.Time{}, err
	}
	clock, err := ParseSlotTime(rawTime)
	if err != nil {
		return "", "", time.Time{}, err
	}

	scheduledAt = time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local)
	return SlotDayKey(scheduledAt), SlotTimeLabel(scheduledAt), scheduledAt, nil
}
