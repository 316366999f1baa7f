package models

// Image is a user_images document. Image holds the base64-encoded payload
// and Type the codec, used as the image/<type> content type.
type Image struct {
	RecordID int64  `bson:"record_id" json:"record_id"`
	Type     string `bson:"type" json:"type"`
	Image    string `bson:"image" json:"image"`
}
