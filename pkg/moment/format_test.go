package moment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/babel/pkg/moment"
)

// Sunday, 70th day of 2024.
func sample() moment.Moment {
	return moment.Date(2024, time.March, 10, 9, 5, 7, 123456789, time.UTC)
}

func TestFormat(t *testing.T) {
	t.Parallel()

	m := sample()

	tests := []struct {
		layout string
		want   string
	}{
		{"YYYY-MM-DD HH:mm:ss.SSS", "2024-03-10 09:05:07.123"},
		{"dddd, MMMM Do YYYY, h:mm:ss a", "Sunday, March 10th 2024, 9:05:07 am"},
		{"ddd MMM D YY", "Sun Mar 10 24"},
		{"dd M Mo", "Su 3 3rd"},
		{"[Today is] dddd", "Today is Sunday"},
		{`[YYYY] \M`, "YYYY M"},
		{"Q Qo DDD DDDo DDDD", "1 1st 70 70th 070"},
		{"d do e E", "0 0th 0 7"},
		{"w wo ww W Wo WW gggg GGGG gg", "11 11th 11 10 10th 10 2024 2024 24"},
		{"H HH h hh k kk A", "9 09 9 09 9 09 AM"},
		{"m mm s ss", "5 05 7 07"},
		{"S SS SSS SSSS SSSSSSSSS", "1 12 123 1234 123456789"},
		{"X x", "1710061507 1710061507123"},
		{"Z ZZ z", "+00:00 +0000 UTC"},
		{"YYYYYY Y", "+002024 2024"},
		{"LT", "9:05 AM"},
		{"LTS", "9:05:07 AM"},
		{"L", "03/10/2024"},
		{"LL", "March 10, 2024"},
		{"LLL", "March 10, 2024 9:05 AM"},
		{"LLLL", "Sunday, March 10, 2024 9:05 AM"},
		{"l", "3/10/2024"},
		{"ll", "Mar 10, 2024"},
		{"lll", "Mar 10, 2024 9:05 AM"},
		{"llll", "Sun, Mar 10, 2024 9:05 AM"},
		{"[L] LT", "L 9:05 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.Format(tt.layout))
		})
	}
}

func TestFormatDefaults(t *testing.T) {
	t.Parallel()

	m := sample()
	assert.Equal(t, "2024-03-10T09:05:07+00:00", m.String())
	assert.Equal(t, m.String(), m.Format(""))

	noon := moment.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "12 12 PM", noon.Format("h k A"))

	midnight := moment.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12 24 am", midnight.Format("h k a"))
}

func TestFormatOffsets(t *testing.T) {
	t.Parallel()

	india := time.FixedZone("IST", 5*3600+1800)
	m := moment.Date(2024, time.March, 10, 9, 5, 0, 0, india)
	assert.Equal(t, "+05:30 +0530 IST", m.Format("Z ZZ z"))
	assert.Equal(t, 330, m.UTCOffset())

	west := sample().WithOffset(-90)
	assert.Equal(t, "07:35 -01:30", west.Format("HH:mm Z"))
	assert.Equal(t, -90, west.UTCOffset())
	assert.False(t, west.IsUTC())

	hours := sample().WithOffset(5)
	assert.Equal(t, 300, hours.UTCOffset())
	assert.Equal(t, "14:05", hours.Format("HH:mm"))
}

func TestFormatLocales(t *testing.T) {
	t.Parallel()

	m := sample()

	assert.Equal(t, "Sonntag, 10. März 2024 09:05", m.WithLocale("de").Format("LLLL"))
	assert.Equal(t, "10.", m.WithLocale("de").Format("Do"))
	assert.Equal(t, "10/03/2024", m.WithLocale("en-GB").Format("L"))

	first := moment.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1er mars", first.WithLocale("fr").Format("Do MMMM"))

	ru := m.WithLocale("ru")
	assert.Equal(t, "10 марта", ru.Format("D MMMM"))
	assert.Equal(t, "март", ru.Format("MMMM"))
	assert.Equal(t, "10-го", ru.Format("Do"))

	pl := m.WithLocale("pl")
	assert.Equal(t, "10 marca", pl.Format("D MMMM"))
	assert.Equal(t, "marzec", pl.Format("MMMM"))

	assert.Equal(t, "10日", m.WithLocale("ja").Format("Do"))

	// Unknown locales fall back to English.
	assert.Equal(t, "March", m.WithLocale("xx").Format("MMMM"))
}

func TestFormatInvalid(t *testing.T) {
	t.Parallel()

	m := moment.Invalid()
	assert.False(t, m.IsValid())
	assert.Equal(t, "Invalid date", m.Format("YYYY-MM-DD"))
	assert.Equal(t, "Invalid date", m.String())
	assert.Equal(t, 0, m.Year())
	assert.True(t, m.Time().IsZero())
}
