package chrono

// Chronology is a calendar system. The supported systems share
// the ISO months, days and year boundaries and differ only in
// year numbering.
type Chronology struct {
	id         string
	yearOffset int64
}

var (
	// ISO is the proleptic Gregorian calendar.
	ISO = Chronology{id: "ISO"}
	// ThaiBuddhist numbers years from 543 BCE.
	ThaiBuddhist = Chronology{id: "ThaiBuddhist", yearOffset: 543}
	// Minguo numbers years from 1912 CE.
	Minguo = Chronology{id: "Minguo", yearOffset: -1911}
)

// ID returns the calendar identifier, e.g. "ISO".
func (c Chronology) ID() string { return c.id }

func (c Chronology) String() string { return c.id }

// IsZero reports whether c is the unset chronology.
func (c Chronology) IsZero() bool { return c.id == "" }

// ProlepticYear converts an ISO year to this calendar's year.
func (c Chronology) ProlepticYear(isoYear int64) int64 {
	return isoYear + c.yearOffset
}

// ISOYear converts a year of this calendar to the ISO year.
func (c Chronology) ISOYear(prolepticYear int64) int64 {
	return prolepticYear - c.yearOffset
}

// DateTime returns the local date-time with the given fields,
// the year counted in this calendar.
func (c Chronology) DateTime(
	year int, month Month, day, hour, minute, second, nano int,
) (LocalDateTime, error) {
	if c.IsZero() {
		c = ISO
	}
	isoYear := c.ISOYear(int64(year))
	if err := validateDateTime(
		isoYear, month, day, hour, minute, second, nano,
	); err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{
		chrono: c,
		wall: newWall(
			isoYear, month, day, hour, minute, second, nano,
		),
	}, nil
}
