package models

type User struct {
	ID        string  `json:"_id" bson:"_id,omitempty"`
	Name      string  `json:"name" bson:"name"`
	Email     string  `json:"email" bson:"email"`
	Password  string  `json:"-" bson:"password"`
	Image     string  `json:"image" bson:"image"`
	Phone     string  `json:"phone" bson:"phone"`
	Address   Address `json:"address" bson:"address"`
	Gender    string  `json:"gender" bson:"gender"`
	Dob       string  `json:"dob" bson:"dob"`
	TimeModel `bson:",inline"`
}

func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
		Phone: u.Phone,
	}
}

type UserSnapshot struct {
	ID    string `json:"_id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Image string `json:"image" bson:"image"`
	Phone string `json:"phone" bson:"phone"`
}
