package sia

import "fmt"

// RoomType is one of the SIA 2024 room categories along which all base data
// and generated profiles are indexed.
type RoomType string

const (
	RoomTypeLivingDining   RoomType = "LIVING_DINING"
	RoomTypeBedroom        RoomType = "BEDROOM"
	RoomTypeKitchen        RoomType = "KITCHEN"
	RoomTypeBathroom       RoomType = "BATHROOM"
	RoomTypeCorridor       RoomType = "CORRIDOR"
	RoomTypeSingleOffice   RoomType = "SINGLE_OFFICE"
	RoomTypeOpenPlanOffice RoomType = "OPEN_PLAN_OFFICE"
	RoomTypeMeetingRoom    RoomType = "MEETING_ROOM"
	RoomTypeReception      RoomType = "RECEPTION"
	RoomTypeClassroom      RoomType = "CLASSROOM"
	RoomTypeRetail         RoomType = "RETAIL"
	RoomTypeRestaurant     RoomType = "RESTAURANT"
	RoomTypeStorage        RoomType = "STORAGE"
)

// AllRoomTypes lists every known room type in a fixed order.
var AllRoomTypes = []RoomType{
	RoomTypeLivingDining,
	RoomTypeBedroom,
	RoomTypeKitchen,
	RoomTypeBathroom,
	RoomTypeCorridor,
	RoomTypeSingleOffice,
	RoomTypeOpenPlanOffice,
	RoomTypeMeetingRoom,
	RoomTypeReception,
	RoomTypeClassroom,
	RoomTypeRetail,
	RoomTypeRestaurant,
	RoomTypeStorage,
}

// ParseRoomType maps a string to a known RoomType.
func ParseRoomType(s string) (RoomType, error) {
	for _, rt := range AllRoomTypes {
		if string(rt) == s {
			return rt, nil
		}
	}
	return "", fmt.Errorf("unknown room type %q", s)
}
