package entities

import "go.mongodb.org/mongo-driver/v2/bson"

// User represents a user account together with its rolling click analytics.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"` // Don't expose password hash in JSON
	Phone        string        `bson:"phone" json:"phone"`
	TotalClicks  int           `bson:"totalClicks" json:"totalClicks"`
	DailyClicks  []DailyClick  `bson:"dailyClicks" json:"dailyClicks"`
	Devices      []DeviceStat  `bson:"devices" json:"devices"`
}

// DailyClick is one entry of the per-user daily series. At most one entry per
// UTC calendar day (YYYY-MM-DD). Count is cumulative since the first recorded
// click, not a per-day delta.
type DailyClick struct {
	Date  string `bson:"date" json:"date"`
	Count int    `bson:"count" json:"count"`
}

// DeviceStat counts clicks attributed to one device-type label.
type DeviceStat struct {
	DeviceType string `bson:"deviceType" json:"deviceType"`
	Count      int    `bson:"count" json:"count"`
}
