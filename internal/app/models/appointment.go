package models

import "time"

// Appointment is the authoritative booking record. SlotDate and SlotTime are
// always canonical (day key + 12-hour label); ScheduledAt is the same slot as
// an absolute instant so the reminder sweep never re-parses the strings.
type Appointment struct {
	ID             string         `json:"_id" bson:"_id,omitempty"`
	UserID         string         `json:"userId" bson:"userId"`
	DocID          string         `json:"docId" bson:"docId"`
	SlotDate       string         `json:"slotDate" bson:"slotDate"`
	SlotTime       string         `json:"slotTime" bson:"slotTime"`
	UserData       UserSnapshot   `json:"userData" bson:"userData"`
	DocData        DoctorSnapshot `json:"docData" bson:"docData"`
	Amount         int            `json:"amount" bson:"amount"`
	Date           int64          `json:"date" bson:"date"`
	ScheduledAt    time.Time      `json:"scheduledAt" bson:"scheduledAt"`
	Cancelled      bool           `json:"cancelled" bson:"cancelled"`
	Payment        bool           `json:"payment" bson:"payment"`
	IsCompleted    bool           `json:"isCompleted" bson:"isCompleted"`
	ReminderSent   bool           `json:"reminderSent" bson:"reminderSent"`
	ReminderSentAt *time.Time     `json:"reminderSentAt,omitempty" bson:"reminderSentAt,omitempty"`
}
