package requests

// AddDoctor arrives as a multipart form with an image part alongside the
// scalar fields. Address is submitted as a JSON-encoded string.
type AddDoctor struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,password"`
	Speciality string `json:"speciality" validate:"required"`
	Degree     string `json:"degree" validate:"required"`
	Experience string `json:"experience" validate:"required"`
	About      string `json:"about" validate:"required"`
	Fees       int    `json:"fees" validate:"required"`

	AddressLine1 string
	AddressLine2 string

	ImageContent     []byte
	ImageContentType string
	ImageFilename    string
}

type ChangeAvailability struct {
	DocID string `json:"docId" validate:"required"`
}
