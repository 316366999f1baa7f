package models

// Profile is a user_data document. Documents are keyed user_data:<record_id>.
type Profile struct {
	RecordID      int64  `bson:"record_id" json:"record_id"`
	Name          string `bson:"name" json:"name"`
	Nickname      string `bson:"nickname" json:"nickname"`
	Picture       int64  `bson:"picture" json:"picture"` // record_id of the user_images document
	UserID        string `bson:"user_id" json:"user_id"`
	Email         string `bson:"email" json:"email"`
	EmailVerified bool   `bson:"email_verified" json:"email_verified"`

	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`

	// Address fields
	Address string `bson:"address" json:"address"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zip_code" json:"zip_code"`

	Phone       string `bson:"phone" json:"phone"`
	DateOfBirth string `bson:"date_of_birth" json:"date_of_birth"`
}
