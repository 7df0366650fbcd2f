package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/typedemo/internal/convert"
	"github.com/roach88/typedemo/internal/report"
)

// Section keys in report order.
const (
	KeyIntegers  = "integers"
	KeyFloats    = "floats"
	KeyText      = "text"
	KeyBooleans  = "booleans"
	KeyDatetime  = "datetime"
	KeyWidening  = "widening"
	KeyNarrowing = "narrowing"
	KeyConverter = "converter"
	KeyParser    = "parser"
	KeyConstants = "constants"
)

// SectionKeys lists every section key in the order Build emits them.
var SectionKeys = []string{
	KeyIntegers, KeyFloats, KeyText, KeyBooleans, KeyDatetime,
	KeyWidening, KeyNarrowing, KeyConverter, KeyParser, KeyConstants,
}

// Options configures Build. Zero fields fall back to the system clock,
// English labels, the default converter and a discarding logger.
type Options struct {
	Clock     Clock
	Locale    *Locale
	Converter *convert.Converter
	Logger    *slog.Logger
}

// builder carries the options through the section functions.
type builder struct {
	clock  Clock
	loc    *Locale
	conv   *convert.Converter
	logger *slog.Logger
}

// Build assembles the full report. The only error source is a failed
// text-to-value conversion.
func Build(opts Options) (*report.Report, error) {
	b, err := newBuilder(opts)
	if err != nil {
		return nil, err
	}

	r := &report.Report{
		App:  AppName,
		Lang: b.loc.Name,
	}

	r.Sections = append(r.Sections,
		b.integers(),
		b.floats(),
		b.text(),
		b.booleans(),
		b.datetime(),
		b.widening(),
		b.narrowing(),
	)

	converter, parser, err := b.conversions()
	if err != nil {
		return nil, err
	}
	r.Sections = append(r.Sections, converter, parser, b.constants())

	b.logger.Debug("report built", "lang", r.Lang, "sections", len(r.Sections))
	return r, nil
}

func newBuilder(opts Options) (*builder, error) {
	b := &builder{
		clock:  opts.Clock,
		loc:    opts.Locale,
		conv:   opts.Converter,
		logger: opts.Logger,
	}
	if b.clock == nil {
		b.clock = SystemClock{}
	}
	if b.loc == nil {
		loc, err := NewLocale(LangEnglish)
		if err != nil {
			return nil, err
		}
		b.loc = loc
	}
	if b.conv == nil {
		b.conv = convert.NewDefault()
	}
	if b.logger == nil {
		b.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return b, nil
}

func (b *builder) integers() report.Section {
	s := report.Section{Key: KeyIntegers, Title: b.loc.T(msgSectionIntegers)}
	for _, sample := range integerSamples() {
		s.Entries = append(s.Entries, report.Entry{
			Label: b.loc.T(msgValueOf, sample.typeName),
			Value: fmt.Sprint(sample.value),
			Note:  b.loc.T(msgRange, sample.min, sample.max),
		})
	}
	return s
}

func (b *builder) floats() report.Section {
	var (
		f32 float32 = sampleFloat
		f64 float64 = sampleFloat
	)

	// 314159265359 x 10^-11, held exactly.
	dec := apd.New(sampleDecimalCoeff, sampleDecimalExp)

	return report.Section{
		Key:   KeyFloats,
		Title: b.loc.T(msgSectionFloats),
		Entries: []report.Entry{
			{Label: b.loc.T(msgValueOf, "float32"), Value: formatFloat32(f32), Note: b.loc.T(msgPrecision32)},
			{Label: b.loc.T(msgValueOf, "float64"), Value: formatFloat64(f64), Note: b.loc.T(msgPrecision64)},
			{Label: b.loc.T(msgValueOf, "apd.Decimal"), Value: dec.String(), Note: b.loc.T(msgDecimal)},
		},
	}
}

func (b *builder) text() report.Section {
	var (
		r rune   = sampleRune
		s string = sampleString
	)

	return report.Section{
		Key:   KeyText,
		Title: b.loc.T(msgSectionText),
		Entries: []report.Entry{
			{Label: b.loc.T(msgValueOf, "rune"), Value: string(r), Note: b.loc.T(msgCodePoint, fmt.Sprintf("%U", r))},
			{Label: b.loc.T(msgValueOf, "string"), Value: s, Note: b.loc.T(msgUnicode)},
			{Label: b.loc.T(msgLengthRunes), Value: strconv.Itoa(utf8.RuneCountInString(s))},
			{Label: b.loc.T(msgLengthBytes), Value: strconv.Itoa(len(s))},
		},
	}
}

func (b *builder) booleans() report.Section {
	t, f := true, false

	return report.Section{
		Key:   KeyBooleans,
		Title: b.loc.T(msgSectionBooleans),
		Entries: []report.Entry{
			{Label: b.loc.T(msgTrue), Value: strconv.FormatBool(t)},
			{Label: b.loc.T(msgFalse), Value: strconv.FormatBool(f)},
			{Label: "true AND false", Value: strconv.FormatBool(t && f)},
			{Label: "true OR false", Value: strconv.FormatBool(t || f)},
			{Label: "NOT true", Value: strconv.FormatBool(!t)},
		},
	}
}

func (b *builder) datetime() report.Section {
	now := b.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	fixed := fixedDate(now.Location())

	return report.Section{
		Key:   KeyDatetime,
		Title: b.loc.T(msgSectionDatetime),
		Entries: []report.Entry{
			{Label: b.loc.T(msgNow), Value: now.Format(b.loc.InstantLayout)},
			{Label: b.loc.T(msgToday), Value: today.Format(b.loc.DateLayout)},
			{Label: b.loc.T(msgFixedDate), Value: fixed.Format(b.loc.DateTimeLayout)},
			{Label: b.loc.T(msgDaysSince), Value: strconv.Itoa(DaysBetween(fixed, now))},
		},
	}
}

// DaysBetween returns the number of whole wall-clock days from start to end,
// truncated toward zero. Offsets are ignored, so a DST change between the
// two instants does not shorten the count.
func DaysBetween(start, end time.Time) int {
	return int(wallClock(end).Sub(wallClock(start)) / (24 * time.Hour))
}

// wallClock reinterprets t's local date and time as UTC.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func (b *builder) widening() report.Section {
	var (
		small int32   = smallInt
		f32   float32 = sampleFloat
	)

	asInt64 := int64(small)
	asFloat32 := float32(small)
	asFloat64 := float64(f32)

	return report.Section{
		Key:   KeyWidening,
		Title: b.loc.T(msgSectionWidening),
		Entries: []report.Entry{
			{Label: b.loc.T(msgConverted, "int32", fmt.Sprint(small), "int64"), Value: strconv.FormatInt(asInt64, 10)},
			{Label: b.loc.T(msgConverted, "int32", fmt.Sprint(small), "float32"), Value: formatFloat32(asFloat32)},
			{Label: b.loc.T(msgConverted, "float32", formatFloat32(f32), "float64"), Value: formatFloat64(asFloat64)},
		},
	}
}

func (b *builder) narrowing() report.Section {
	var (
		pi    float64 = piValue
		large int64   = largeLong
	)

	return report.Section{
		Key:   KeyNarrowing,
		Title: b.loc.T(msgSectionNarrowing),
		Entries: []report.Entry{
			{
				Label: b.loc.T(msgConverted, "float64", formatFloat64(pi), "int"),
				Value: strconv.Itoa(int(pi)),
				Note:  b.loc.T(msgTruncated),
			},
			{
				Label: b.loc.T(msgConverted, "int64", strconv.FormatInt(large, 10), "int32"),
				Value: strconv.FormatInt(int64(Truncate32(large)), 10),
				Note:  b.loc.T(msgDataLoss),
			},
		},
	}
}

// Truncate32 keeps the low 32 bits of v, reinterpreted as a signed value.
func Truncate32(v int64) int32 {
	return int32(v)
}

// conversionInput is one text literal run through both conversion mechanisms.
type conversionInput struct {
	kind     convert.Kind
	text     string
	typeName string
}

var conversionInputs = []conversionInput{
	{convert.KindInt, numberString, "int"},
	{convert.KindFloat, floatString, "float64"},
	{convert.KindBool, boolString, "bool"},
}

// conversions builds the converter and parser sections from the same inputs.
func (b *builder) conversions() (report.Section, report.Section, error) {
	converter := report.Section{Key: KeyConverter, Title: b.loc.T(msgSectionConverter)}
	parser := report.Section{Key: KeyParser, Title: b.loc.T(msgSectionParser)}

	agree := true
	for _, in := range conversionInputs {
		cmp, err := convert.Compare(b.conv, in.kind, in.text)
		if err != nil {
			return report.Section{}, report.Section{}, fmt.Errorf("convert %q to %s: %w", in.text, in.typeName, err)
		}
		b.logger.Debug("converted sample", "kind", in.kind, "input", in.text,
			"converted", cmp.Converted, "parsed", cmp.Parsed, "agree", cmp.Agree)

		quoted := strconv.Quote(in.text)
		converter.Entries = append(converter.Entries, report.Entry{
			Label: b.loc.T(msgViaConvert, quoted, in.typeName),
			Value: cmp.Converted,
		})
		parser.Entries = append(parser.Entries, report.Entry{
			Label: b.loc.T(msgViaParse, quoted, in.typeName),
			Value: cmp.Parsed,
		})
		agree = agree && cmp.Agree
	}

	parser.Entries = append(parser.Entries, report.Entry{
		Label: b.loc.T(msgAgree),
		Value: strconv.FormatBool(agree),
	})
	return converter, parser, nil
}

func (b *builder) constants() report.Section {
	return report.Section{
		Key:   KeyConstants,
		Title: b.loc.T(msgSectionConstants),
		Entries: []report.Entry{
			{Label: b.loc.T(msgConstant, "Pi"), Value: formatFloat64(Pi)},
			{Label: b.loc.T(msgConstant, "AppName"), Value: AppName},
		},
	}
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
