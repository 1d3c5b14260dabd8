package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Generator defaults, applied when a generation request leaves the working
// hours or slot duration unset.
const (
	DefaultWorkingHoursStart   = "09:00"
	DefaultWorkingHoursEnd     = "17:00"
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxGenerationRangeDays = 366
	MaxNotesLength         = 500
)
