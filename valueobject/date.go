package valueobject

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/go-leo/themevalue/builder"
	"github.com/go-leo/themevalue/ddd"
	"github.com/go-leo/themevalue/factory"
)

const (
	FieldDay       = "day"
	FieldMonth     = "month"
	FieldYear      = "year"
	FieldVariant   = "variant"
	FieldWeekDay   = "week_day"
	FieldMonthName = "monthname"
)

// dateLayout accepts one or two digit months and days and a four digit year.
const dateLayout = "2006-1-2"

const (
	minYear = 0
	maxYear = 9999
)

var errYearOutOfRange = errors.New("year out of range")

var _ ddd.ValueObject[*Date] = (*Date)(nil)

// Date is a calendar date with a rendering variant.
type Date struct {
	Base
	t time.Time
}

// DateFields are the named inputs of a Date. A nil Variant means the
// default variant, a non-nil one is kept as is, even when empty.
type DateFields struct {
	Day     string
	Month   string
	Year    string
	Variant *string
}

func newDate(fields DateFields, variant string) (*Date, error) {
	composed := strings.Join([]string{fields.Year, fields.Month, fields.Day}, "-")
	t, err := time.Parse(dateLayout, composed)
	if err != nil {
		return nil, newInvalidDateError(composed, err)
	}
	return &Date{
		Base: newBase(
			field{name: FieldDay, value: fields.Day},
			field{name: FieldMonth, value: fields.Month},
			field{name: FieldYear, value: fields.Year},
			field{name: FieldVariant, value: variant},
			field{name: FieldWeekDay, value: t.Format("Monday")},
			field{name: FieldMonthName, value: t.Format("January")},
		),
		t: t,
	}, nil
}

// DateFromFields builds a Date from named fields.
func DateFromFields(fields DateFields, opts ...DateOption) (*Date, error) {
	if fields.Variant != nil {
		return newDate(fields, *fields.Variant)
	}
	return newDate(fields, newOptions(opts...).DefaultVariant)
}

// DateFromMap builds a Date from a raw field map. day, month and year are
// required, variant defaults only when the key is absent and every other key
// is ignored.
func DateFromMap(m map[string]string, opts ...DateOption) (*Date, error) {
	var fields DateFields
	required := []struct {
		key string
		dst *string
	}{
		{key: FieldDay, dst: &fields.Day},
		{key: FieldMonth, dst: &fields.Month},
		{key: FieldYear, dst: &fields.Year},
	}
	for _, r := range required {
		v, ok := m[r.key]
		if !ok {
			return nil, newMissingFieldError(r.key)
		}
		*r.dst = v
	}
	if variant, ok := m[FieldVariant]; ok {
		fields.Variant = &variant
	}
	return DateFromFields(fields, opts...)
}

// DateFromJSON decodes a JSON object of strings and builds a Date like DateFromMap.
func DateFromJSON(data []byte, opts ...DateOption) (*Date, error) {
	m, err := decodeFields(data)
	if err != nil {
		return nil, err
	}
	return DateFromMap(m, opts...)
}

// DateFromTime builds a Date from the calendar day of t. t keeps its own
// location unless WithLocation is given.
func DateFromTime(t time.Time, opts ...DateOption) (*Date, error) {
	return dateFromTime(t, newOptions(opts...))
}

func dateFromTime(t time.Time, o *options) (*Date, error) {
	if o.Location != nil {
		t = t.In(o.Location)
	}
	return newDate(DateFields{
		Day:   t.Format("02"),
		Month: t.Format("01"),
		Year:  t.Format("2006"),
	}, o.DefaultVariant)
}

// DateFromUnix builds a Date from Unix seconds, read in the configured
// location (time.Local by default). Only years 0 through 9999 are supported,
// seconds outside that range are an invalid timestamp.
func DateFromUnix(sec int64, opts ...DateOption) (*Date, error) {
	o := newOptions(opts...)
	if o.Location == nil {
		o.Location = time.Local
	}
	if year := time.Unix(sec, 0).In(o.Location).Year(); year < minYear || year > maxYear {
		return nil, newInvalidTimestampError(strconv.FormatInt(sec, 10), errYearOutOfRange)
	}
	return dateFromTime(time.Unix(sec, 0), o)
}

// DateFromTimestamp builds a Date from a string of Unix seconds.
func DateFromTimestamp(timestamp string, opts ...DateOption) (*Date, error) {
	timestamp = strings.TrimSpace(timestamp)
	sec, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return nil, newInvalidTimestampError(timestamp, err)
	}
	return DateFromUnix(sec, opts...)
}

// DateFromTimestampProto builds a Date from a protobuf timestamp, read in the
// configured location (time.Local by default).
func DateFromTimestampProto(ts *timestamppb.Timestamp, opts ...DateOption) (*Date, error) {
	if err := ts.CheckValid(); err != nil {
		return nil, newInvalidTimestampError(strconv.FormatInt(ts.GetSeconds(), 10), err)
	}
	return DateFromUnix(ts.GetSeconds(), opts...)
}

// WithVariant returns a copy of d with variant replaced.
func (d *Date) WithVariant(variant string) *Date {
	return &Date{Base: d.with(FieldVariant, variant), t: d.t}
}

func (d *Date) Day() string       { return d.value(FieldDay) }
func (d *Date) Month() string     { return d.value(FieldMonth) }
func (d *Date) Year() string      { return d.value(FieldYear) }
func (d *Date) Variant() string   { return d.value(FieldVariant) }
func (d *Date) WeekDay() string   { return d.value(FieldWeekDay) }
func (d *Date) MonthName() string { return d.value(FieldMonthName) }

// Time returns midnight UTC of the date.
func (d *Date) Time() time.Time { return d.t }

func (d *Date) SameValueAs(other *Date) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Base.Equal(other.Base)
}

var _ builder.Builder[*Date] = (*DateBuilder)(nil)

// DateBuilder collects date fields by name.
type DateBuilder struct {
	fields  DateFields
	variant string
	opts    []DateOption
}

func NewDateBuilder(opts ...DateOption) *DateBuilder {
	return &DateBuilder{opts: opts}
}

func (b *DateBuilder) Day(day string) *DateBuilder {
	b.fields.Day = day
	return b
}

func (b *DateBuilder) Month(month string) *DateBuilder {
	b.fields.Month = month
	return b
}

func (b *DateBuilder) Year(year string) *DateBuilder {
	b.fields.Year = year
	return b
}

func (b *DateBuilder) Variant(variant string) *DateBuilder {
	b.variant = variant
	b.fields.Variant = &b.variant
	return b
}

func (b *DateBuilder) Build(ctx context.Context) (*Date, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return DateFromFields(b.fields, b.opts...)
}

// NewDateFactory returns a factory building dates from times.
func NewDateFactory(opts ...DateOption) factory.Factory[*Date, time.Time] {
	return factory.Func[*Date, time.Time](func(ctx context.Context, t time.Time) (*Date, error) {
		return DateFromTime(t, opts...)
	})
}
