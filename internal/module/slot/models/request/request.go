package request

type UpsertSlot struct {
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Price     int64  `json:"price" validate:"required,gt=0"`
	Duration  int    `json:"duration" validate:"required"`
}

type SlotExpiration struct {
	SlotID string `json:"slot_id" validate:"required"`
}
