package models

type Address struct {
	Line1 string `json:"line1" bson:"line1"`
	Line2 string `json:"line2" bson:"line2"`
}

// Doctor carries its own booked-slots map keyed by day key (25_7_2025) with
// 12-hour time labels (04:00 PM) as members. The map mirrors the appointments
// collection for fast availability reads; the unique slot index on
// appointments stays authoritative.
type Doctor struct {
	ID          string              `json:"_id" bson:"_id,omitempty"`
	Name        string              `json:"name" bson:"name"`
	Email       string              `json:"email" bson:"email"`
	Password    string              `json:"-" bson:"password"`
	Image       string              `json:"image" bson:"image"`
	Speciality  string              `json:"speciality" bson:"speciality"`
	Degree      string              `json:"degree" bson:"degree"`
	Experience  string              `json:"experience" bson:"experience"`
	About       string              `json:"about" bson:"about"`
	Available   bool                `json:"available" bson:"available"`
	Fees        int                 `json:"fees" bson:"fees"`
	Address     Address             `json:"address" bson:"address"`
	SlotsBooked map[string][]string `json:"slots_booked" bson:"slots_booked"`
	TimeModel   `bson:",inline"`
}

// Snapshot strips credentials and the booked-slots map for embedding inside
// an appointment document.
func (d *Doctor) Snapshot() DoctorSnapshot {
	return DoctorSnapshot{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Image:      d.Image,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Experience: d.Experience,
		About:      d.About,
		Fees:       d.Fees,
		Address:    d.Address,
	}
}

type DoctorSnapshot struct {
	ID         string  `json:"_id" bson:"_id"`
	Name       string  `json:"name" bson:"name"`
	Email      string  `json:"email" bson:"email"`
	Image      string  `json:"image" bson:"image"`
	Speciality string  `json:"speciality" bson:"speciality"`
	Degree     string  `json:"degree" bson:"degree"`
	Experience string  `json:"experience" bson:"experience"`
	About      string  `json:"about" bson:"about"`
	Fees       int     `json:"fees" bson:"fees"`
	Address    Address `json:"address" bson:"address"`
}
