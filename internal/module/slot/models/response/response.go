package response

type Slot struct {
	ID           string `json:"id"`
	InfluencerID string `json:"influencer_id"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Duration     int    `json:"duration"`
	Price        int64  `json:"price"`
	Status       string `json:"status"`
}
