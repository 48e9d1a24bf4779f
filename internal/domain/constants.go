package domain

// Field limits, matching the VARCHAR(255) columns
const (
	MaxNameLength  = 255
	MaxEmailLength = 255
)
