package models

// Client is the person booking appointments. Account management lives in the
// identity layer; the scheduler only needs the id and push token.
type Client struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	FCMToken string `bson:"fcmToken,omitempty" json:"-"`
}
