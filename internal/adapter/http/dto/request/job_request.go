package request

// ProgressToggleRequest flips one checklist option on a room of an open job.
type ProgressToggleRequest struct {
	Option string `json:"option" binding:"required"`
}

// RoomNoteRequest replaces the note on a room of an open job.
type RoomNoteRequest struct {
	Note string `json:"note"`
}
