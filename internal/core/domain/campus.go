package domain

// DefaultCampusCenter is used whenever the device location is unknown.
var DefaultCampusCenter = Coordinates{Lat: 6.67460, Lng: -1.57160}

// CampusLocations returns a fresh copy of the KNUST points of interest.
func CampusLocations() []Location {
	out := make([]Location, len(campusLocations))
	for i, l := range campusLocations {
		l.Facilities = append([]string(nil), l.Facilities...)
		out[i] = l
	}
	return out
}

var campusLocations = []Location{
	{
		ID:          "main-library",
		Title:       "Main Library",
		Description: "Prempeh II reading rooms, e-resources and quiet study floors.",
		Category:    CategoryAcademic,
		Coordinates: Coordinates{Lat: 6.67490, Lng: -1.56740},
		OpenHours:   "Mon-Sat 08:00-22:00",
		Facilities:  []string{"Wi-Fi", "Study rooms", "Printing"},
		WalkingTime: "5 min",
		Rating:      4.6,
	},
	{
		ID:          "great-hall",
		Title:       "Great Hall",
		Description: "Main venue for congregations, matriculation and large public events.",
		Category:    CategoryLandmark,
		Coordinates: Coordinates{Lat: 6.67535, Lng: -1.56665},
		OpenHours:   "Event days only",
		Facilities:  []string{"Auditorium", "Parking"},
		WalkingTime: "6 min",
		Rating:      4.7,
	},
	{
		ID:          "senate-building",
		Title:       "Senate Building",
		Description: "University administration, registry and the Vice-Chancellor's office.",
		Category:    CategoryLandmark,
		Coordinates: Coordinates{Lat: 6.67410, Lng: -1.56820},
		OpenHours:   "Mon-Fri 08:00-17:00",
		Facilities:  []string{"Registry", "Accounts office"},
		WalkingTime: "4 min",
		Rating:      4.1,
	},
	{
		ID:          "college-of-engineering",
		Title:       "College of Engineering",
		Description: "Lecture theatres, labs and the engineering auditorium.",
		Category:    CategoryAcademic,
		Coordinates: Coordinates{Lat: 6.67330, Lng: -1.56520},
		OpenHours:   "Mon-Fri 07:00-20:00",
		Facilities:  []string{"Labs", "Auditorium", "Wi-Fi"},
		WalkingTime: "8 min",
		Rating:      4.4,
	},
	{
		ID:          "republic-hall-dining",
		Title:       "Republic Hall Dining",
		Description: "Hall canteen serving local dishes from breakfast to late supper.",
		Category:    CategoryDining,
		Coordinates: Coordinates{Lat: 6.67780, Lng: -1.56950},
		OpenHours:   "Daily 06:30-21:30",
		Facilities:  []string{"Seating", "Mobile money"},
		WalkingTime: "9 min",
		Rating:      4.0,
	},
	{
		ID:          "knust-hospital",
		Title:       "University Hospital",
		Description: "Campus hospital with emergency care, pharmacy and student clinic.",
		Category:    CategoryHealthcare,
		Coordinates: Coordinates{Lat: 6.67230, Lng: -1.56080},
		OpenHours:   "24 hours",
		Facilities:  []string{"Emergency", "Pharmacy", "Laboratory"},
		WalkingTime: "15 min",
		Rating:      4.2,
	},
	{
		ID:          "commercial-area",
		Title:       "Commercial Area",
		Description: "Food court, banks, bookshops and everyday shopping.",
		Category:    CategoryDining,
		Coordinates: Coordinates{Lat: 6.68230, Lng: -1.57620},
		OpenHours:   "Daily 07:00-23:00",
		Facilities:  []string{"ATM", "Food court", "Shops"},
		WalkingTime: "20 min",
		Rating:      4.3,
	},
	{
		ID:          "ayeduase-gate",
		Title:       "Ayeduase Gate",
		Description: "Southern gate towards the Ayeduase and Kotei hostels.",
		Category:    CategoryEntrance,
		Coordinates: Coordinates{Lat: 6.66980, Lng: -1.55490},
		OpenHours:   "24 hours",
		Facilities:  []string{"Taxi rank", "Security post"},
		WalkingTime: "25 min",
		Rating:      3.9,
	},
	{
		ID:          "main-entrance",
		Title:       "Main Entrance",
		Description: "Tech Junction gate on the Accra-Kumasi road.",
		Category:    CategoryEntrance,
		Coordinates: Coordinates{Lat: 6.68720, Lng: -1.58220},
		OpenHours:   "24 hours",
		Facilities:  []string{"Bus stop", "Security post"},
		WalkingTime: "30 min",
		Rating:      4.0,
	},
}
