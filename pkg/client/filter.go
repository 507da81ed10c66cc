package client

import "strings"

// contains is a case-insensitive substring match.
func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// FilterDoctors returns the doctors whose fullName, specialty, or
// nationalCode contains the query, case-insensitively. An empty query
// returns the input unchanged. Pure function of (query, dataset).
func FilterDoctors(doctors []Doctor, query string) []Doctor {
	if query == "" {
		return doctors
	}
	var out []Doctor
	for _, d := range doctors {
		if contains(d.FullName, query) || contains(d.Specialty, query) || contains(d.NationalCode, query) {
			out = append(out, d)
		}
	}
	return out
}

// FilterDepartments returns the departments whose name contains the query.
func FilterDepartments(depts []Department, query string) []Department {
	if query == "" {
		return depts
	}
	var out []Department
	for _, d := range depts {
		if contains(d.Name, query) {
			out = append(out, d)
		}
	}
	return out
}

// FilterPatients returns the entries whose firstName, lastName, or
// currentCondition contains the query.
func FilterPatients(entries []PatientLogEntry, query string) []PatientLogEntry {
	if query == "" {
		return entries
	}
	var out []PatientLogEntry
	for _, e := range entries {
		if contains(e.FirstName, query) || contains(e.LastName, query) || contains(e.CurrentCondition, query) {
			out = append(out, e)
		}
	}
	return out
}
