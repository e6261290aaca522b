package models

import "unicode/utf8"

// StudentFields is the replaceable part of a student row.
type StudentFields struct {
	Name       string `gorm:"size:10;not null" json:"name"`
	Department string `gorm:"size:20;not null" json:"department"`
	RollNo     int    `gorm:"column:rollno;type:integer;not null;default:0" json:"rollno"`
}

type Student struct {
	ID uint `gorm:"primaryKey" json:"id"`
	StudentFields
}

type Limits struct {
	Name       int
	Department int
}

// Truncate cuts text fields down to the given number of characters.
func (f StudentFields) Truncate(limits Limits) StudentFields {
	f.Name = truncate(f.Name, limits.Name)
	f.Department = truncate(f.Department, limits.Department)
	return f
}

// truncate cuts at a byte offset so that the kept prefix is unchanged.
func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	offset := 0
	for n := 0; n < limit; n++ {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	return s[:offset]
}
