package responses

import "docpoint-service/internal/app/models"

type NotificationEvent struct {
	Event       string              `json:"event"`
	Appointment *models.Appointment `json:"appointment"`
}
