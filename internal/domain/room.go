package domain

type Room struct {
	ID          int32  `json:"id"`
	BuildingID  int32  `json:"building_id"`
	TypeID      *int32 `json:"type_id,omitempty"`
	RoomNumber  string `json:"room_number"` // unique within a building
	FloorNumber int32  `json:"floor_number"`
	IsAvailable bool   `json:"is_available"`
}
