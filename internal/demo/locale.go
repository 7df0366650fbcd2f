package demo

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Every key has an English and a Chinese entry in the catalog.
const (
	msgBanner  = "banner"
	msgClosing = "closing"
	msgHeader  = "header"
	msgNote    = "note"
	msgPrompt  = "prompt"

	msgSectionIntegers  = "section.integers"
	msgSectionFloats    = "section.floats"
	msgSectionText      = "section.text"
	msgSectionBooleans  = "section.booleans"
	msgSectionDatetime  = "section.datetime"
	msgSectionWidening  = "section.widening"
	msgSectionNarrowing = "section.narrowing"
	msgSectionConverter = "section.converter"
	msgSectionParser    = "section.parser"
	msgSectionConstants = "section.constants"

	msgValueOf     = "value.of"
	msgRange       = "note.range"
	msgPrecision32 = "note.precision32"
	msgPrecision64 = "note.precision64"
	msgDecimal     = "note.decimal"
	msgCodePoint   = "note.codepoint"
	msgUnicode     = "note.unicode"
	msgTruncated   = "note.truncated"
	msgDataLoss    = "note.dataloss"

	msgLengthRunes = "label.length.runes"
	msgLengthBytes = "label.length.bytes"
	msgTrue        = "label.true"
	msgFalse       = "label.false"
	msgNow         = "label.now"
	msgToday       = "label.today"
	msgFixedDate   = "label.fixed"
	msgDaysSince   = "label.days"
	msgConverted   = "label.converted"
	msgViaConvert  = "label.via.converter"
	msgViaParse    = "label.via.parser"
	msgAgree       = "label.agree"
	msgConstant    = "label.constant"
)

type translation struct {
	en string
	zh string
}

var translations = map[string]translation{
	msgBanner:  {"===== Go Data Types Demo =====", "===== Go数据类型演示程序 ====="},
	msgClosing: {"===== End of Demo =====", "===== 演示结束 ====="},
	msgHeader:  {"[%s]", "【%s】"},
	msgNote:    {" (%s)", " (%s)"},
	msgPrompt:  {"Press Enter to exit...", "按回车键退出..."},

	msgSectionIntegers:  {"Integer Types", "整数类型演示"},
	msgSectionFloats:    {"Floating-Point Types", "浮点类型演示"},
	msgSectionText:      {"Characters and Strings", "字符和字符串演示"},
	msgSectionBooleans:  {"Boolean Type", "布尔类型演示"},
	msgSectionDatetime:  {"Date and Time", "日期时间演示"},
	msgSectionWidening:  {"Widening Conversions", "扩大转换示例"},
	msgSectionNarrowing: {"Narrowing Conversions", "缩小转换示例"},
	msgSectionConverter: {"General Converter", "使用通用转换器转换示例"},
	msgSectionParser:    {"Type-Specific Parsers", "使用strconv解析示例"},
	msgSectionConstants: {"Constants", "常量演示"},

	msgValueOf:     {"%s value", "%s值"},
	msgRange:       {"range: %d to %d", "范围: %d 到 %d"},
	msgPrecision32: {"about 7 significant digits", "精度约为7位数字"},
	msgPrecision64: {"about 15-16 significant digits", "精度约为15-16位数字"},
	msgDecimal:     {"arbitrary-precision decimal", "任意精度十进制数"},
	msgCodePoint:   {"Unicode code point %s", "Unicode码点 %s"},
	msgUnicode:     {"UTF-8 encoded Unicode text", "UTF-8编码的Unicode字符串"},
	msgTruncated:   {"fractional part truncated", "小数部分被截断"},
	msgDataLoss:    {"high-order bits discarded", "高位被丢弃，数据丢失"},

	msgLengthRunes: {"string length in runes", "string长度（字符数）"},
	msgLengthBytes: {"string length in bytes", "string长度（字节数）"},
	msgTrue:        {"true value", "true值"},
	msgFalse:       {"false value", "false值"},
	msgNow:         {"current date and time", "当前日期和时间"},
	msgToday:       {"today", "今天日期"},
	msgFixedDate:   {"fixed date", "特定日期"},
	msgDaysSince:   {"days since fixed date", "现在距离特定日期的天数"},
	msgConverted:   {"%s value %s converted to %s", "%s值 %s 转换为%s"},
	msgViaConvert:  {"string %s converted to %s", "字符串 %s 转换为%s"},
	msgViaParse:    {"string %s parsed as %s", "字符串 %s 解析为%s"},
	msgAgree:       {"converter and parser agree", "两种方式结果一致"},
	msgConstant:    {"constant %s", "常量%s值"},
}

// Locale renders labels in one language.
type Locale struct {
	Name string
	Tag  language.Tag

	// Layouts for the date/time section.
	InstantLayout  string
	DateLayout     string
	DateTimeLayout string

	printer *message.Printer
}

// Supported locale names.
const (
	LangEnglish = "en"
	LangChinese = "zh"
)

// Languages lists the supported locale names.
var Languages = []string{LangEnglish, LangChinese}

var localeTags = map[string]language.Tag{
	LangEnglish: language.English,
	LangChinese: language.Chinese,
}

// NewLocale returns the locale for name ("en" or "zh").
func NewLocale(name string) (*Locale, error) {
	tag, ok := localeTags[name]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q: must be one of %v", name, Languages)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, tr := range translations {
		if err := b.SetString(language.English, key, tr.en); err != nil {
			return nil, fmt.Errorf("catalog %s (en): %w", key, err)
		}
		if err := b.SetString(language.Chinese, key, tr.zh); err != nil {
			return nil, fmt.Errorf("catalog %s (zh): %w", key, err)
		}
	}

	loc := &Locale{
		Name:          name,
		Tag:           tag,
		InstantLayout: "2006-01-02 15:04:05",
		printer:       message.NewPrinter(tag, message.Catalog(b)),
	}
	switch name {
	case LangChinese:
		loc.DateLayout = "2006年01月02日"
		loc.DateTimeLayout = "2006年01月02日 15:04:05"
	default:
		loc.DateLayout = "2006-01-02"
		loc.DateTimeLayout = "2006-01-02 15:04:05"
	}
	return loc, nil
}

// T looks up key and formats args into it.
func (l *Locale) T(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}

// Banner is the first line of the text report.
func (l *Locale) Banner() string { return l.T(msgBanner) }

// Closing is the last line of the text report.
func (l *Locale) Closing() string { return l.T(msgClosing) }

// Prompt asks the user to press Enter before the program exits.
func (l *Locale) Prompt() string { return l.T(msgPrompt) }
