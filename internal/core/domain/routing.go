package domain

import "strings"

// DefaultHandler is the catch-all designation for departments that have no
// dedicated handler.
const DefaultHandler = "AO"

// departmentHandlers maps a grievance's department category to the
// designation that takes first responsibility for it.
var departmentHandlers = map[string]string{
	"Hostel":         "Chief Warden",
	"Mess":           "Chief Mess Coordinator",
	"Academic":       "Dean Academics",
	"Hospital":       "Chief Medical Officer",
	"Sports/Gym":     "Chief Sports Coordinator",
	"Ragging":        "DIRECTOR",
	"Others":         DefaultHandler,
	"Administration": DefaultHandler,
}

// HandlerForDepartment returns the initial handler designation for a
// department, falling back to DefaultHandler for unknown departments.
func HandlerForDepartment(department string) string {
	if h, ok := departmentHandlers[department]; ok {
		return h
	}
	return DefaultHandler
}

// DepartmentFromCategory extracts the department segment from a category
// string formatted as "<Department> - <Sub> - <Detail>". A category without
// separators is its own department.
func DepartmentFromCategory(category string) string {
	dept, _, _ := strings.Cut(category, " - ")
	return dept
}
