package dto

type PlanRequest struct {
	ReturnToStart *bool `json:"return_to_start"`
}

type PlanStopResponse struct {
	Position    int     `json:"position"`
	SiteIndex   int     `json:"site_index"`
	Label       string  `json:"label"`
	LegDistance float64 `json:"leg_distance"`
}

type PlanResponse struct {
	Tour              []int              `json:"tour"`
	ReturnToStart     bool               `json:"return_to_start"`
	TotalDistance     float64            `json:"total_distance"`
	ReturnLegDistance float64            `json:"return_leg_distance"`
	Stops             []PlanStopResponse `json:"stops"`
}
