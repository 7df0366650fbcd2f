package demo

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/typedemo/internal/convert"
	"github.com/roach88/typedemo/internal/report"
	"github.com/roach88/typedemo/internal/testutil"
)

func buildAt(t *testing.T, now time.Time) *report.Report {
	t.Helper()

	r, err := Build(Options{Clock: testutil.NewFixedClock(now)})
	require.NoError(t, err)
	return r
}

func entryValue(t *testing.T, r *report.Report, key string, idx int) string {
	t.Helper()

	s := r.Section(key)
	require.NotNil(t, s, "section %s", key)
	require.Greater(t, len(s.Entries), idx)
	return s.Entries[idx].Value
}

func TestBuild_SectionOrder(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	assert.Equal(t, SectionKeys, r.Keys())
	assert.Equal(t, AppName, r.App)
	assert.Equal(t, LangEnglish, r.Lang)

	for _, s := range r.Sections {
		assert.NotEmpty(t, s.Title, s.Key)
		assert.NotEmpty(t, s.Entries, s.Key)
	}
}

func TestBuild_EveryHeaderRendered(t *testing.T) {
	loc, err := NewLocale(LangEnglish)
	require.NoError(t, err)

	r := buildAt(t, testutil.GoldenTime())

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, r, loc))

	out := buf.String()
	require.NotEmpty(t, out)
	for _, s := range r.Sections {
		assert.Contains(t, out, "["+s.Title+"]")
	}
}

func TestBuild_IntegerExtremes(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	want := []string{
		"255", "-128", "32767", "65535",
		"2147483647", "4294967295", "9223372036854775807", "18446744073709551615",
	}
	s := r.Section(KeyIntegers)
	require.NotNil(t, s)
	require.Len(t, s.Entries, len(want))
	for i, v := range want {
		assert.Equal(t, v, s.Entries[i].Value)
	}
	assert.Equal(t, "range: -32,768 to 32,767", s.Entries[2].Note)
}

func TestBuild_Floats(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	assert.Equal(t, "3.1415927", entryValue(t, r, KeyFloats, 0))
	assert.Equal(t, "3.14159265359", entryValue(t, r, KeyFloats, 1))
	assert.Equal(t, "3.14159265359", entryValue(t, r, KeyFloats, 2))
}

func TestBuild_Text(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	assert.Equal(t, "A", entryValue(t, r, KeyText, 0))
	assert.Equal(t, "8", entryValue(t, r, KeyText, 2))
	assert.Equal(t, "20", entryValue(t, r, KeyText, 3))
}

func TestBuild_Booleans(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	s := r.Section(KeyBooleans)
	require.NotNil(t, s)

	got := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		got[i] = e.Value
	}
	assert.Equal(t, []string{"true", "false", "false", "true", "false"}, got)
}

func TestBuild_DateTime(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	assert.Equal(t, "2024-03-15 09:30:00", entryValue(t, r, KeyDatetime, 0))
	assert.Equal(t, "2024-03-15", entryValue(t, r, KeyDatetime, 1))
	assert.Equal(t, "2023-01-01 12:00:00", entryValue(t, r, KeyDatetime, 2))
	assert.Equal(t, "438", entryValue(t, r, KeyDatetime, 3))
}

func TestBuild_NarrowingTruncates(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	assert.Equal(t, "3", entryValue(t, r, KeyNarrowing, 0))
	assert.Equal(t, "1286608618", entryValue(t, r, KeyNarrowing, 1))
}

func TestTruncate32(t *testing.T) {
	tests := []struct {
		in   int64
		want int32
	}{
		{9876543210, 1286608618},
		{100, 100},
		{1 << 32, 0},
		{1<<31 + 5, -1<<31 + 5},
		{-1, -1},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatInt(tt.in, 10), func(t *testing.T) {
			got := Truncate32(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, uint32(tt.in), uint32(got), "low 32 bits preserved")
		})
	}
}

func TestBuild_Widening(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	assert.Equal(t, "100", entryValue(t, r, KeyWidening, 0))
	assert.Equal(t, "100", entryValue(t, r, KeyWidening, 1))
	assert.Equal(t, "3.1415927410125732", entryValue(t, r, KeyWidening, 2))
}

func TestBuild_ConversionMechanismsAgree(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	converter := r.Section(KeyConverter)
	parser := r.Section(KeyParser)
	require.NotNil(t, converter)
	require.NotNil(t, parser)
	require.Len(t, converter.Entries, 3)
	require.Len(t, parser.Entries, 4)

	for i, want := range []string{"123", "3.14159", "true"} {
		assert.Equal(t, want, converter.Entries[i].Value)
		assert.Equal(t, want, parser.Entries[i].Value)
	}
	assert.Equal(t, "true", parser.Entries[3].Value)
}

func TestBuild_Constants(t *testing.T) {
	r := buildAt(t, testutil.GoldenTime())

	assert.Equal(t, "3.14159", entryValue(t, r, KeyConstants, 0))
	assert.Equal(t, AppName, entryValue(t, r, KeyConstants, 1))
}

func TestBuild_ConversionFailurePropagates(t *testing.T) {
	conv := convert.NewDefault()
	require.NoError(t, conv.Register(convert.KindInt, func(text string) (any, error) {
		return nil, strconv.ErrSyntax
	}))

	_, err := Build(Options{
		Clock:     testutil.NewFixedClock(testutil.GoldenTime()),
		Converter: conv,
	})
	require.Error(t, err)

	var convErr *convert.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, convert.KindInt, convErr.Kind)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestBuild_OnlyClockFieldsDifferAcrossRuns(t *testing.T) {
	first := buildAt(t, testutil.GoldenTime())
	second := buildAt(t, testutil.GoldenTime().Add(49*time.Hour+7*time.Minute))

	require.Equal(t, first.Keys(), second.Keys())
	for i := range first.Sections {
		if first.Sections[i].Key == KeyDatetime {
			continue
		}
		assert.Equal(t, first.Sections[i], second.Sections[i])
	}

	assert.NotEqual(t, entryValue(t, first, KeyDatetime, 0), entryValue(t, second, KeyDatetime, 0))
	assert.Equal(t, entryValue(t, first, KeyDatetime, 2), entryValue(t, second, KeyDatetime, 2))
}

func TestBuild_ValidatesAgainstSchema(t *testing.T) {
	v, err := report.NewValidator()
	require.NoError(t, err)

	for _, lang := range Languages {
		loc, err := NewLocale(lang)
		require.NoError(t, err)

		r, err := Build(Options{Clock: testutil.NewFixedClock(testutil.GoldenTime()), Locale: loc})
		require.NoError(t, err)
		assert.NoError(t, v.Validate(r), lang)
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(start, start.Add(23*time.Hour)))
	assert.Equal(t, 1, DaysBetween(start, start.Add(24*time.Hour)))
	assert.Equal(t, 438, DaysBetween(start, testutil.GoldenTime()))
	assert.Equal(t, 0, DaysBetween(start, start.Add(-time.Hour)))
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start := time.Date(2023, time.January, 1, 12, 0, 0, 0, ny)
	end := time.Date(2023, time.July, 1, 12, 30, 0, 0, ny)

	// Only 180d23h30m of absolute time elapse because of the spring-forward hour.
	assert.Equal(t, 181, DaysBetween(start, end))
	assert.Equal(t, 181, DaysBetween(fixedDate(ny), end))
}

func TestNewLocale_Unsupported(t *testing.T) {
	_, err := NewLocale("fr")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "fr"))
}

func TestLocale_RangeGrouping(t *testing.T) {
	for _, lang := range Languages {
		loc, err := NewLocale(lang)
		require.NoError(t, err)
		assert.Contains(t, loc.T(msgRange, int32(-2147483648), int32(2147483647)), "2,147,483,647", lang)
	}
}
