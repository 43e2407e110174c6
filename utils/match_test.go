package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDoctor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Dr. Ahmed", "ahmed"},
		{"dr.ahmed", "ahmed"},
		{" Ahmed ", "ahmed"},
		{"DR. Sarah", "sarah"},
		{"Ahmed Khan", "ahmed khan"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDoctor(tt.in), "input %q", tt.in)
	}
}

func TestSameDoctor(t *testing.T) {
	assert.True(t, SameDoctor("Dr. Ahmed", "dr.ahmed"))
	assert.True(t, SameDoctor("Dr. Ahmed", " Ahmed "))
	assert.True(t, SameDoctor("dr.ahmed", " Ahmed "))
	assert.False(t, SameDoctor("Dr. Ahmed", "Ahmed Khan"))
	assert.False(t, SameDoctor("Dr. Sarah", "Dr. Ahmed"))
}

func TestSamePatient(t *testing.T) {
	assert.True(t, SamePatient("Abdullah", " abdullah "))
	assert.True(t, SamePatient("ABDULLAH", "abdullah"))
	assert.False(t, SamePatient("Abdullah", "Abdullah K"))
	// Patients keep their full name; no title stripping happens here.
	assert.False(t, SamePatient("Dr. Ahmed", "Ahmed"))
}
