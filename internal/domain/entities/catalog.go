package entities

// CostOption is one editable catalog entry: a billable label and its unit
// price. The label is the merge key; prices are user-overridable and the
// overridden set is persisted separately per side (estimate vs invoice).
type CostOption struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// SquareFootageLabel is the catalog entry billed per square foot rather than
// per room.
const SquareFootageLabel = "Square Footage"

// DefaultEstimateCostOptions returns the built-in estimate price list. Saved
// overrides are merged over these by label.
func DefaultEstimateCostOptions() []CostOption {
	return []CostOption{
		{Label: SquareFootageLabel, Value: 3.0},
		{Label: "8ft ceiling walls trim and doors", Value: 350},
		{Label: "9ft ceiling walls trim and doors", Value: 400},
		{Label: "10ft ceiling walls trim and doors", Value: 450},
		{Label: "Vaulted ceiling", Value: 600},
		{Label: "8ft walls and ceilings", Value: 275},
		{Label: "9ft walls and ceilings", Value: 325},
		{Label: "10ft walls and ceilings", Value: 385},
		{Label: "8ft walls", Value: 225},
		{Label: "9ft walls", Value: 275},
		{Label: "10ft walls", Value: 325},
		{Label: "Just ceiling", Value: 150},
		{Label: "Just trim and doors", Value: 150},
		{Label: "Painting Stairs", Value: 125},
		{Label: "Staining Stairs", Value: 500},
		{Label: "Matching Stain to floor", Value: 600},
		{Label: "Staining Beam", Value: 250},
		{Label: "Painting Railing", Value: 450},
		{Label: "Staining Railing", Value: 550},
		{Label: "Other", Value: 50},
	}
}

// DefaultInvoiceCostOptions returns the built-in invoice price list. It
// matches the estimate list except "Just trim and doors" (125 vs 150).
func DefaultInvoiceCostOptions() []CostOption {
	options := DefaultEstimateCostOptions()
	for i := range options {
		if options[i].Label == "Just trim and doors" {
			options[i].Value = 125
		}
	}
	return options
}

// RoomOptions lists the selectable room names. The first entry switches the
// line item to per-square-foot pricing.
func RoomOptions() []string {
	return []string{
		SquareFootageLabel,
		"Front Entry",
		"Living Room",
		"Kitchen",
		"Dining Room",
		"Hall",
		"Master Bedroom",
		"Master Bath",
		"Walk-in closet",
		"Bedroom 2",
		"Bedroom 3",
		"Main Bath",
		"Office",
		"Nursery",
		"Stairway",
		"Play Room",
		"Laundry Room",
		"Rec Room",
		"Bedroom 4",
		"Bedroom 5",
		"Downstairs Bath",
		"Upstairs Bath",
		"Half Bath",
		"Garage",
		"Beam",
		"Railing",
		"Extra Room",
		"Stairs",
		"Sun Room",
		"Closet",
	}
}

// ExtraOptions lists the selectable extra types. "Other" allows a custom type.
func ExtraOptions() []string {
	return []string{"Paint", "Stain", "Primer", "Travel", "Other"}
}

// ProgressOptions lists the per-room progress checkboxes tracked on open jobs.
func ProgressOptions() []string {
	return []string{
		"1 coat primer on walls",
		"1 coat primer on ceiling",
		"1 coat of paint on ceiling",
		"2 coats of paint on ceiling",
		"1 coat cut in",
		"2 coats cut in",
		"1 coat paint on walls",
		"2 coats paint on walls",
		"3 coats paint on walls",
		"1 coat paint on trim",
		"2 coats paint on trim",
		"1 coat paint on doors",
		"2 coats paint on doors",
		"1 sanding",
		"2 sanding",
		"3 sanding",
		"1 coat of stain",
		"2 coats of stain",
		"1 clear coat",
		"2 clear coats",
		"3 clear coats",
	}
}

// DescriptionOptions lists the boilerplate estimate descriptions. "Other"
// switches the record to its custom description field.
func DescriptionOptions() []string {
	return []string{
		"This estimate is valid for 10 days and includes both labor and materials. Any additional work or materials not covered will incur extra charges. Feel free to contact me for any questions.",
		"This estimate is valid for 10 days and includes labor for the agreed-upon scope of work. Any additional tasks or materials not mentioned will result in extra costs. Feel free to contact me with questions.",
		"Includes all the labor, paint is extra.",
		"Includes both labor and paint.",
		"Other",
	}
}

// InvoiceDescription is stamped onto every invoice created from a closed job,
// replacing whatever description the job carried.
const InvoiceDescription = "Thank you for your business! Payment due upon receipt."
