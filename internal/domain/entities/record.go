package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Bucket names one persisted ordered list of records.
//
// Every bucket is read and written wholesale: the store returns a snapshot,
// the caller mutates it, and the whole slice is written back. Record numbers
// are unique across all four record buckets, not per bucket.

type Bucket string

const (
	BucketEstimates  Bucket = "estimates"
	BucketOpenJobs   Bucket = "openJobs"
	BucketClosedJobs Bucket = "closedJobs"
	BucketInvoices   Bucket = "invoices"
)

// RecordBuckets returns the four record buckets in lifecycle order.
func RecordBuckets() []Bucket {
	return []Bucket{BucketEstimates, BucketOpenJobs, BucketClosedJobs, BucketInvoices}
}

// Auxiliary storage keys for catalogs and flat lists.
const (
	KeyEstimateCostOptions = "estimateCostOptions"
	KeyInvoiceCostOptions  = "invoiceCostOptions"
	KeyDirectExpenses      = "directExpenses"
	KeyStaffPayments       = "staffPayments"
)

// Amount is a monetary or numeric field that tolerates the loose typing of
// persisted payloads: JSON numbers, numeric strings, empty strings and null
// all decode, with anything non-numeric coercing to zero.

type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(a))
}

func (a Amount) Float() float64 { return float64(a) }

// RoomLineItem is one priced room on a record.
//
// Two pricing shapes share the struct:
//   - a standard room is billed at LockedPrice when locked, Cost otherwise;
//   - a "Square Footage" room is billed at SquareFootage times the locked
//     per-square-foot price (or the catalog's current one if never locked).
//
// A locked value of zero means "never locked". Progress and Note are only
// populated once the record has been copied into the open-jobs bucket.
type RoomLineItem struct {
	RoomName              string   `json:"roomName"`
	CustomRoomName        string   `json:"customRoomName,omitempty"`
	Cost                  Amount   `json:"cost"`
	LockedPrice           *Amount  `json:"lockedPrice,omitempty"`
	LockedSquareFootPrice *Amount  `json:"lockedSquareFootPrice,omitempty"`
	SquareFootage         Amount   `json:"squareFootage,omitempty"`
	Note                  string   `json:"note,omitempty"`
	Progress              []string `json:"progress,omitempty"`
}

// ExtraLineItem is a non-room charge (paint, stain, travel, ...).
// Billed at LockedCost when locked, Cost otherwise.
type ExtraLineItem struct {
	Type       string  `json:"type"`
	CustomType string  `json:"customType,omitempty"`
	Cost       Amount  `json:"cost"`
	LockedCost *Amount `json:"lockedCost,omitempty"`
}

// Record is the priced-document shape shared by estimates, jobs and invoices.
// EstimateNumber is the zero-padded sequential identifier that stays with the
// record as it moves between buckets.
type Record struct {
	EstimateNumber    string          `json:"estimateNumber"`
	Date              string          `json:"date"`
	CustomerName      string          `json:"customerName"`
	PhoneNumber       string          `json:"phoneNumber"`
	Address           string          `json:"address"`
	Rooms             []RoomLineItem  `json:"rooms"`
	Extras            []ExtraLineItem `json:"extras"`
	Description       string          `json:"description"`
	CustomDescription string          `json:"customDescription,omitempty"`
	Subtotal          Amount          `json:"subtotal"`
	GstHst            Amount          `json:"gstHst"`
	Total             Amount          `json:"total"`
}

// EffectiveDescription resolves the "Other" placeholder to the custom text.
func (r Record) EffectiveDescription() string {
	if r.Description == "Other" {
		return r.CustomDescription
	}
	return r.Description
}

// IndexByNumber returns the position of the record with the given estimate
// number, or -1.
func IndexByNumber(records []Record, number string) int {
	for i, r := range records {
		if r.EstimateNumber == number {
			return i
		}
	}
	return -1
}
