package domain

import "time"

// Subscription is the edge record "subscriber follows channel". Both ends are user ids.
type Subscription struct {
	SubscriptionID string    `json:"subscriptionID"`
	SubscriberID   string    `json:"subscriberID"`
	ChannelID      string    `json:"channelID"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ChannelProfile is the derived channel view computed on read. Counts are never
// stored; they are aggregated from subscription edges per request.
type ChannelProfile struct {
	UserID            string `json:"userID"`
	FullName          string `json:"fullName"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Avatar            string `json:"avatar"`
	CoverImage        string `json:"coverImage,omitempty"`
	SubscriberCount   int64  `json:"subscriberCount"`
	SubscribedToCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed      bool   `json:"isSubscribed"`
}
