package request

type SetCommission struct {
	CommissionPercentage int64 `json:"commission_percentage" validate:"required,gte=0,lte=100"`
}

type ReviewVerification struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Reason   string `json:"reason" validate:"omitempty,max=500"`
}

type AnalyticsQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

type Pagination struct {
	Page  int `query:"page" validate:"omitempty,gte=1"`
	Limit int `query:"limit" validate:"omitempty,gte=1,lte=100"`
}
