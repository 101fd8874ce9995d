package course

import (
	"encoding/json"
	"os"

	"fairway/internal/pkg/errs"
)

// Provider families. Chronogolf appears twice because its two marketplace
// API generations have incompatible wire formats.
const (
	ProviderForeUp       = "foreup"
	ProviderChronogolfV1 = "chronogolf"
	ProviderChronogolfV2 = "chronogolf_v2"
	ProviderMemberPortal = "member_portal"
)

// Course binds one physical golf course to the upstream that publishes its
// tee sheet.
type Course struct {
	Name         string  `json:"name"`
	Provider     string  `json:"provider"`
	BookingURL   string  `json:"booking_url"`
	ClubID       string  `json:"club_id,omitempty"`
	CourseIDs    []int64 `json:"course_ids,omitempty"`
	ScheduleID   int64   `json:"schedule_id,omitempty"`
	GolfClubID   int64   `json:"golf_club_id,omitempty"`
	BookingClass int64   `json:"booking_class,omitempty"`
}

type Catalog []Course

// DefaultCatalog mirrors the courses the service tracked at launch. A JSON
// file can replace it without a rebuild (COURSES_FILE).
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name:       "Bonneville Golf Course",
			Provider:   ProviderChronogolfV2,
			BookingURL: "https://www.chronogolf.com/club/bonneville-golf-course",
			ClubID:     "17591",
			CourseIDs:  []int64{20945},
		},
		{
			Name:       "Mountain Dell Golf Course",
			Provider:   ProviderChronogolfV1,
			BookingURL: "https://www.chronogolf.com/club/mountain-dell-golf-course",
			ClubID:     "16708",
			CourseIDs:  []int64{19613, 19614},
		},
		{
			Name:         "The Ridge Golf Club",
			Provider:     ProviderForeUp,
			BookingURL:   "https://app.foreupsoftware.com/index.php/booking/19765",
			ScheduleID:   2431,
			BookingClass: 49991,
		},
		{
			Name:       "Eaglewood Golf Course",
			Provider:   ProviderMemberPortal,
			BookingURL: "https://eaglewood.cps.golf",
			GolfClubID: 2,
		},
	}
}

// Load reads a catalog from a JSON file, falling back to the built-in set
// when path is empty.
func Load(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read courses file")
	}
	var catalog Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, errs.Wrap(err, "failed to parse courses file")
	}
	return catalog, nil
}

func (c Catalog) ByProvider(provider string) Catalog {
	var out Catalog
	for _, course := range c {
		if course.Provider == provider {
			out = append(out, course)
		}
	}
	return out
}

func (c Catalog) ByName(name string) (Course, bool) {
	for _, course := range c {
		if course.Name == name {
			return course, true
		}
	}
	return Course{}, false
}
