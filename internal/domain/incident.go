package domain

// CrimeCategory classifies a historical incident. The set is fixed and each
// category carries a fixed severity weight used as the base risk contribution.
type CrimeCategory string

const (
	CategoryTheft      CrimeCategory = "Theft"
	CategoryRobbery    CrimeCategory = "Robbery"
	CategoryAssault    CrimeCategory = "Assault"
	CategoryHarassment CrimeCategory = "Harassment"
)

// categorySeverity is catalog metadata, not per-incident state.
var categorySeverity = map[CrimeCategory]int{
	CategoryTheft:      2,
	CategoryRobbery:    5,
	CategoryAssault:    7,
	CategoryHarassment: 4,
}

// Severity returns the fixed weight for the category, 0 for unknown categories.
func (c CrimeCategory) Severity() int {
	return categorySeverity[c]
}

// IsValid reports whether the category belongs to the fixed enumeration.
func (c CrimeCategory) IsValid() bool {
	_, ok := categorySeverity[c]
	return ok
}

// AllCategories returns the fixed category set in a stable order.
func AllCategories() []CrimeCategory {
	return []CrimeCategory{CategoryTheft, CategoryRobbery, CategoryAssault, CategoryHarassment}
}

// VictimProfile is the demographic an incident is recorded against.
type VictimProfile string

const (
	ProfileFemale VictimProfile = "Female"
	ProfileMale   VictimProfile = "Male"
	ProfileAny    VictimProfile = "Any"
)

// AllVictimProfiles returns the fixed profile set in a stable order.
func AllVictimProfiles() []VictimProfile {
	return []VictimProfile{ProfileFemale, ProfileMale, ProfileAny}
}

// Matches reports whether the profile is demographically relevant for the
// requester gender. ProfileAny matches every requester; an unknown gender
// string simply fails to match and earns no bonus.
func (p VictimProfile) Matches(gender string) bool {
	return p == ProfileAny || string(p) == gender
}

// TimeOfDay is the coarse temporal bucket an incident is recorded in.
type TimeOfDay string

const (
	TimeDay   TimeOfDay = "day"
	TimeNight TimeOfDay = "night"
)

// AllTimesOfDay returns the fixed time-of-day set in a stable order.
func AllTimesOfDay() []TimeOfDay {
	return []TimeOfDay{TimeDay, TimeNight}
}

// TimeOfDayForHour buckets an hour of day: night spans 19:00 through 05:59.
func TimeOfDayForHour(hour int) TimeOfDay {
	if hour >= 19 || hour < 6 {
		return TimeNight
	}
	return TimeDay
}

// Incident is one historical crime record used purely as a risk signal.
// Fields never mutate after creation.
type Incident struct {
	Lat           float64       `json:"lat" db:"lat"`
	Lon           float64       `json:"lon" db:"lon"`
	Category      CrimeCategory `json:"category" db:"category"`
	VictimProfile VictimProfile `json:"victim_profile" db:"victim_profile"`
	TimeOfDay     TimeOfDay     `json:"time_of_day" db:"time_of_day"`
}

// IncidentCatalog is an immutable snapshot of the incident history, built once
// at process start and shared read-only by every request. The scorer and the
// heatmap projector never see which source populated it.
type IncidentCatalog struct {
	incidents []Incident
}

// NewIncidentCatalog copies the given incidents into an immutable catalog.
func NewIncidentCatalog(incidents []Incident) *IncidentCatalog {
	snapshot := make([]Incident, len(incidents))
	copy(snapshot, incidents)
	return &IncidentCatalog{incidents: snapshot}
}

// All returns the catalog contents in insertion order. The returned slice is
// the catalog's backing storage and must be treated as read-only.
func (c *IncidentCatalog) All() []Incident {
	return c.incidents
}

// Size returns the number of incidents in the catalog.
func (c *IncidentCatalog) Size() int {
	return len(c.incidents)
}
