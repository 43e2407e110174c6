package utils

import "strings"

// NormalizePatient folds a patient name for comparison: lower-case and
// trimmed of surrounding whitespace.
func NormalizePatient(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

// NormalizeDoctor folds a doctor name the way the dashboards match them:
// lower-case, trimmed, and with a leading "dr." title stripped. "Dr. Ahmed",
// "dr.ahmed" and " Ahmed " all normalize to "ahmed".
func NormalizeDoctor(name string) string {
	n := strings.TrimSpace(strings.ToLower(name))
	n = strings.TrimPrefix(n, "dr.")
	return strings.TrimSpace(n)
}

// SamePatient reports whether two patient names refer to the same person.
func SamePatient(a, b string) bool {
	return NormalizePatient(a) == NormalizePatient(b)
}

// SameDoctor reports whether two doctor names refer to the same doctor.
// There is no foreign key behind these names; this normalized comparison
// is the only link between a doctor's account and their appointments.
func SameDoctor(a, b string) bool {
	return NormalizeDoctor(a) == NormalizeDoctor(b)
}
