package response

import (
	"primefinish/internal/domain/entities"
	"primefinish/internal/usecase"
)

// RoomLineItemResponse mirrors the stored room shape, locked fields included,
// so a client can round-trip a record through save without losing price locks.
type RoomLineItemResponse struct {
	RoomName              string           `json:"roomName"`
	CustomRoomName        string           `json:"customRoomName"`
	Cost                  entities.Amount  `json:"cost"`
	LockedPrice           *entities.Amount `json:"lockedPrice,omitempty"`
	LockedSquareFootPrice *entities.Amount `json:"lockedSquareFootPrice,omitempty"`
	SquareFootage         entities.Amount  `json:"squareFootage"`
	Note                  string           `json:"note"`
	Progress              []string         `json:"progress"`
}

type ExtraLineItemResponse struct {
	Type       string           `json:"type"`
	CustomType string           `json:"customType"`
	Cost       entities.Amount  `json:"cost"`
	LockedCost *entities.Amount `json:"lockedCost,omitempty"`
}

type RecordResponse struct {
	EstimateNumber    string                  `json:"estimateNumber"`
	Date              string                  `json:"date"`
	CustomerName      string                  `json:"customerName"`
	PhoneNumber       string                  `json:"phoneNumber"`
	Address           string                  `json:"address"`
	Rooms             []RoomLineItemResponse  `json:"rooms"`
	Extras            []ExtraLineItemResponse `json:"extras"`
	Description       string                  `json:"description"`
	CustomDescription string                  `json:"customDescription"`
	Subtotal          entities.Amount         `json:"subtotal"`
	GstHst            entities.Amount         `json:"gstHst"`
	Total             entities.Amount         `json:"total"`
}

type TotalsResponse struct {
	Subtotal entities.Amount `json:"subtotal"`
	GstHst   entities.Amount `json:"gstHst"`
	Total    entities.Amount `json:"total"`
}

type NextNumberResponse struct {
	Number string `json:"number"`
}

func FromRecord(record entities.Record) RecordResponse {
	rooms := make([]RoomLineItemResponse, 0, len(record.Rooms))
	for _, room := range record.Rooms {
		rooms = append(rooms, RoomLineItemResponse{
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
	extras := make([]ExtraLineItemResponse, 0, len(record.Extras))
	for _, extra := range record.Extras {
		extras = append(extras, ExtraLineItemResponse{
			Type:       extra.Type,
			CustomType: extra.CustomType,
			Cost:       extra.Cost,
			LockedCost: extra.LockedCost,
		})
	}
	return RecordResponse{
		EstimateNumber:    record.EstimateNumber,
		Date:              record.Date,
		CustomerName:      record.CustomerName,
		PhoneNumber:       record.PhoneNumber,
		Address:           record.Address,
		Rooms:             rooms,
		Extras:            extras,
		Description:       record.Description,
		CustomDescription: record.CustomDescription,
		Subtotal:          record.Subtotal,
		GstHst:            record.GstHst,
		Total:             record.Total,
	}
}

func FromRecords(records []entities.Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, FromRecord(record))
	}
	return out
}

func FromTotals(t usecase.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal: entities.Amount(t.Subtotal),
		GstHst:   entities.Amount(t.GstHst),
		Total:    entities.Amount(t.Total),
	}
}
