package update_capacity_config

// UpdateCapacityRequest HTTP request model.
// День недели приходит в path, тело содержит только вместимость.
type UpdateCapacityRequest struct {
	SlotsPerTime int `json:"slotsPerTime"`
}
