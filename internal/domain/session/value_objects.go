package session

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxTimeSlotLength = 50
	MaxLevelLength    = 50
	MaxNoteLength     = 500
	MaxFee            = 1000000
)

var (
	ErrMissingVenue   = errors.New("venue is required")
	ErrEmptyTimeSlot  = errors.New("time slot is required")
	ErrEmptyNetHeight = errors.New("net height is required")
	ErrEmptyLevel     = errors.New("level is required")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrNegativeFee    = errors.New("fee cannot be negative")
	ErrFeeTooLarge    = errors.New("fee exceeds the limit")
)

// Details is the descriptive part of a session. None of it affects capacity.
type Details struct {
	VenueID   uuid.UUID
	TimeSlot  string
	NetHeight string
	Level     string
	Fee       int
	Note      *string
}

func (d Details) normalized() Details {
	d.TimeSlot = strings.TrimSpace(d.TimeSlot)
	d.NetHeight = strings.TrimSpace(d.NetHeight)
	d.Level = strings.TrimSpace(d.Level)
	if d.Note != nil {
		note := strings.TrimSpace(*d.Note)
		if note == "" {
			d.Note = nil
		} else {
			d.Note = &note
		}
	}
	return d
}

func (d Details) validate() error {
	switch {
	case d.VenueID == uuid.Nil:
		return ErrMissingVenue
	case d.TimeSlot == "":
		return ErrEmptyTimeSlot
	case d.NetHeight == "":
		return ErrEmptyNetHeight
	case d.Level == "":
		return ErrEmptyLevel
	case d.Fee < 0:
		return ErrNegativeFee
	case d.Fee > MaxFee:
		return ErrFeeTooLarge
	}
	if utf8.RuneCountInString(d.TimeSlot) > MaxTimeSlotLength ||
		utf8.RuneCountInString(d.Level) > MaxLevelLength ||
		(d.Note != nil && utf8.RuneCountInString(*d.Note) > MaxNoteLength) {
		return ErrFieldTooLong
	}
	return nil
}
