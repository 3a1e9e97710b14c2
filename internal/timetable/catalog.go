package timetable

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Classroom is a bookable room taken from the provider's resource catalog.
// Identity is the provider-assigned ID; Name is the human-facing code such as
// "0244" or "3109V+". Info carries the free-text equipment list.
type Classroom struct {
	ID       int
	Name     string
	Path     string
	Category string
	Capacity int
	Info     string
}

// A valid classroom code is four digits with an optional lock/virtual marker.
var classroomNamePattern = regexp.MustCompile(`^[0-9]{4}(?:V|\+|V\+|V\+\+)?$`)

// Rooms that are never offered even though their catalog entry looks normal.
var hardExcludedNames = map[string]struct{}{
	"0351": {},
	"0244": {},
	"3109": {},
	"0163": {},
}

var plainCodePattern = regexp.MustCompile(`^[0-9]+$`)

// IsClassroom reports whether a catalog resource is a real classroom: its
// category tag must be "classroom" and its name must match the code pattern.
func IsClassroom(c Classroom) bool {
	return c.Category == "classroom" && classroomNamePattern.MatchString(c.Name)
}

// FilterClassrooms keeps only the resources IsClassroom accepts.
func FilterClassrooms(resources []Classroom) []Classroom {
	classrooms := make([]Classroom, 0, len(resources))
	for _, resource := range resources {
		if IsClassroom(resource) {
			classrooms = append(classrooms, resource)
		}
	}
	return classrooms
}

// ExcludeSpecialRooms drops rooms that are not generally bookable: suffixed
// (locked/virtual) codes, lab and exam rooms, the sixth wing, and a fixed set
// of special-purpose rooms.
func ExcludeSpecialRooms(classrooms []Classroom) []Classroom {
	kept := make([]Classroom, 0, len(classrooms))
	for _, classroom := range classrooms {
		path := strings.ToLower(classroom.Path)
		if !plainCodePattern.MatchString(classroom.Name) {
			continue
		}
		if strings.Contains(path, "labos") || strings.Contains(path, "examens") {
			continue
		}
		if strings.HasPrefix(classroom.Name, "6") {
			continue
		}
		if _, excluded := hardExcludedNames[classroom.Name]; excluded {
			continue
		}
		kept = append(kept, classroom)
	}
	return kept
}

// CorrectName resolves user input to a canonical catalog name. Three-digit
// input is left-padded with a zero, then the first catalog entry whose name
// contains the normalized input wins, in catalog order. The second return is
// false when nothing matches.
func CorrectName(classrooms []Classroom, input string) (string, bool) {
	normalized := strings.TrimSpace(input)
	if len(normalized) == 3 {
		normalized = "0" + normalized
	}

	for _, classroom := range classrooms {
		if strings.Contains(classroom.Name, normalized) {
			return classroom.Name, true
		}
	}
	return "", false
}

// CapacityTier buckets a room's seat count for presentation.
type CapacityTier string

const (
	// TierSmall covers rooms seating up to 16.
	TierSmall CapacityTier = "small"
	// TierMedium covers rooms seating up to 32.
	TierMedium CapacityTier = "medium"
	// TierLarge covers everything bigger.
	TierLarge CapacityTier = "large"
)

// Profile is the presentation-oriented classification of a classroom.
type Profile struct {
	Locked    bool
	Board     string
	Equipment []string
	Tier      CapacityTier
}

// Classify derives a room's profile from its name and equipment notes. A room
// is locked when its name carries a reservation marker (V, +, V+, V++) or its
// notes mention a reservation. The board type is the first comma-separated
// equipment entry mentioning a board, "Aucun" when there is none; locked rooms
// report no other equipment.
func Classify(c Classroom) Profile {
	entries := splitEquipment(c.Info)

	board := "Aucun"
	equipment := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry), "tableau") {
			if board == "Aucun" {
				board = capitalize(entry)
			}
			continue
		}
		equipment = append(equipment, entry)
	}

	locked := strings.HasSuffix(c.Name, "+") || strings.HasSuffix(c.Name, "V") ||
		strings.Contains(strings.ToLower(c.Info), "réservé")
	if locked {
		equipment = nil
	}

	tier := TierLarge
	switch {
	case c.Capacity <= 16:
		tier = TierSmall
	case c.Capacity <= 32:
		tier = TierMedium
	}

	return Profile{Locked: locked, Board: board, Equipment: equipment, Tier: tier}
}

func splitEquipment(info string) []string {
	if strings.TrimSpace(info) == "" {
		return nil
	}
	parts := strings.Split(info, ", ")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}

// capitalize upper-cases the first rune; equipment notes start with accented
// letters often enough that byte slicing would corrupt them.
func capitalize(text string) string {
	first, size := utf8.DecodeRuneInString(text)
	if first == utf8.RuneError && size <= 1 {
		return text
	}
	return string(unicode.ToUpper(first)) + text[size:]
}
