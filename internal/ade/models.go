package ade

// Project identifies an ADE planning project. ESIEE publishes one project per
// academic year; the bot always works against the first one listed.
type Project struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Resource is a catalog entry returned by getResources. The attribute set
// grows with the requested detail level; the fields below cover detail 3
// (name, path, category) and detail 11 (size and info on top).
type Resource struct {
	ID       int    `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	Path     string `xml:"path,attr"`
	Category string `xml:"category,attr"`
	Size     int    `xml:"size,attr"`
	Info     string `xml:"info,attr"`
}

// Event is a scheduled slot returned by getEvents.
type Event struct {
	ID        int             `xml:"id,attr"`
	Date      string          `xml:"date,attr"`
	StartHour string          `xml:"startHour,attr"`
	EndHour   string          `xml:"endHour,attr"`
	Resources []EventResource `xml:"resources>resource"`
}

// EventResource links an event to the resources it occupies.
type EventResource struct {
	ID int `xml:"id,attr"`
}

// ResourceOptions narrows a getResources call.
type ResourceOptions struct {
	Detail   int
	ID       *int
	Category string
}

// EventOptions narrows a getEvents call. Date is MM/DD/YYYY as ADE expects;
// Resources, when set, limits the listing to a single resource ID.
type EventOptions struct {
	Date      string
	Resources *int
	Detail    int
}
