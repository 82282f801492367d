package request

import (
	"strings"

	"primefinish/internal/domain/entities"
)

// RoomLineItemRequest mirrors the stored room shape. Locked fields are
// pointers so an absent field stays distinguishable from an explicit zero.
type RoomLineItemRequest struct {
	RoomName              string           `json:"roomName"`
	CustomRoomName        string           `json:"customRoomName"`
	Cost                  entities.Amount  `json:"cost"`
	LockedPrice           *entities.Amount `json:"lockedPrice"`
	LockedSquareFootPrice *entities.Amount `json:"lockedSquareFootPrice"`
	SquareFootage         entities.Amount  `json:"squareFootage"`
	Note                  string           `json:"note"`
	Progress              []string         `json:"progress"`
}

type ExtraLineItemRequest struct {
	Type       string           `json:"type"`
	CustomType string           `json:"customType"`
	Cost       entities.Amount  `json:"cost"`
	LockedCost *entities.Amount `json:"lockedCost"`
}

// RecordRequest is the estimate/invoice write payload. Totals in the payload
// are ignored; the server recomputes them before persisting.
type RecordRequest struct {
	EstimateNumber    string                 `json:"estimateNumber"`
	Date              string                 `json:"date"`
	CustomerName      string                 `json:"customerName" binding:"required"`
	PhoneNumber       string                 `json:"phoneNumber"`
	Address           string                 `json:"address"`
	Rooms             []RoomLineItemRequest  `json:"rooms"`
	Extras            []ExtraLineItemRequest `json:"extras"`
	Description       string                 `json:"description"`
	CustomDescription string                 `json:"customDescription"`
}

// PreviewRequest carries line items for a totals computation without saving.
type PreviewRequest struct {
	Rooms  []RoomLineItemRequest  `json:"rooms"`
	Extras []ExtraLineItemRequest `json:"extras"`
}

func (r RecordRequest) ToEntity() entities.Record {
	return entities.Record{
		EstimateNumber:    strings.TrimSpace(r.EstimateNumber),
		Date:              strings.TrimSpace(r.Date),
		CustomerName:      strings.TrimSpace(r.CustomerName),
		PhoneNumber:       strings.TrimSpace(r.PhoneNumber),
		Address:           strings.TrimSpace(r.Address),
		Rooms:             toRoomEntities(r.Rooms),
		Extras:            toExtraEntities(r.Extras),
		Description:       r.Description,
		CustomDescription: r.CustomDescription,
	}
}

func (r PreviewRequest) ToEntities() ([]entities.RoomLineItem, []entities.ExtraLineItem) {
	return toRoomEntities(r.Rooms), toExtraEntities(r.Extras)
}

func toRoomEntities(rooms []RoomLineItemRequest) []entities.RoomLineItem {
	out := make([]entities.RoomLineItem, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, entities.RoomLineItem{
			RoomName:              room.RoomName,
			CustomRoomName:        room.CustomRoomName,
			Cost:                  room.Cost,
			LockedPrice:           room.LockedPrice,
			LockedSquareFootPrice: room.LockedSquareFootPrice,
			SquareFootage:         room.SquareFootage,
			Note:                  room.Note,
			Progress:              room.Progress,
		})
	}
	return out
}

func toExtraEntities(extras []ExtraLineItemRequest) []entities.ExtraLineItem {
	out := make([]entities.ExtraLineItem, 0, len(extras))
	for _, extra := range extras {
		out = append(out, entities.ExtraLineItem{
			Type:       extra.Type,
			CustomType: extra.CustomType,
			Cost:       extra.Cost,
			LockedCost: extra.LockedCost,
		})
	}
	return out
}
