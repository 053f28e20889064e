package domain

type Building struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	TotalFloors int32  `json:"total_floors"`
	OwnerID     *int32 `json:"owner_id,omitempty"` // landlord account; nullable, ON DELETE SET NULL
	IsActive    bool   `json:"is_active"`
	CreatedOn   string `json:"created_on"`
}

// RoomType is a rate/capacity template referenced by rooms.
type RoomType struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	BaseRate    string `json:"base_rate"`
	Capacity    int32  `json:"capacity"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}
