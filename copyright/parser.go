// Package copyright recognizes, parses and regenerates copyright lines
// inside source file comment blocks. A copyright line is made of four
// components - message keyword, tag, year(s) and owner - whose required
// relative order is fixed by the parser's order policy.
package copyright

import (
	"fmt"
	"regexp"
	"strings"
)

// Order selects the required relative field order of a copyright line.
type Order uint8

const (
	// Order1 expects: message tag years owner.
	Order1 Order = iota
	// Order2 expects: owner message tag years.
	Order2
)

// Default English grammar.
const (
	DefaultMessagePattern = `Copyright|COPYRIGHT|copyright`
	DefaultTagPattern     = `\([cC]\)`
	DefaultYearPattern    = `\d{4}`
	DefaultOwnerPattern   = `[a-zA-Z0-9,./\- @]`

	defaultMessageText = "Copyright"
	defaultTagText     = "(c)"
)

// Config holds the regular expressions that recognize each component of
// a copyright line. OwnerPattern is a single-character class matched
// repeatedly to find the owner run; the character classes configured here
// decide ASCII versus Unicode matching.
type Config struct {
	MessagePattern string
	TagPattern     string
	YearPattern    string
	OwnerPattern   string

	// MessageText and TagText are the literal component texts used when
	// creating a line from scratch without a prior parse.
	MessageText string
	TagText     string
}

// subText is a trimmed substring and its offsets within the parsed line.
type subText struct {
	text  string
	start int
	end   int
}

// newSubText trims the raw substring and records where the trimmed text
// sits within the base string.
func newSubText(raw string, base int) subText {
	leftTrimmed := strings.TrimLeft(raw, " \t")
	text := strings.TrimRight(leftTrimmed, " \t\r\n")
	start := base + (len(raw) - len(leftTrimmed))
	return subText{text: text, start: start, end: start + len(text)}
}

// yearList is the ordered set of year matches found in a line, with the
// offsets of the first and last match.
type yearList struct {
	values []int
	start  int
	end    int
}

func (y yearList) valid() bool {
	return len(y.values) > 0
}

// Parser parses a copyright line into its components and rebuilds it with
// updated years or owner. Parse state is recomputed fresh on every
// ParseLine call; AddOwner and ReplaceOwner mutate only the in-memory
// fields used by the next rebuild.
type Parser struct {
	order   Order
	msgRe   *regexp.Regexp
	tagRe   *regexp.Regexp
	yearRe  *regexp.Regexp
	ownerRe *regexp.Regexp

	msgText string
	tagText string

	valid         bool
	line          string
	leading       string
	message       string
	tag           string
	years         []int
	owner         string
	trailing      string
	trailingStart int
}

// New compiles a parser for the given order policy and grammar. Zero
// valued Config fields fall back to the English defaults.
func New(order Order, cfg Config) (*Parser, error) {
	if cfg.MessagePattern == "" {
		cfg.MessagePattern = DefaultMessagePattern
	}
	if cfg.TagPattern == "" {
		cfg.TagPattern = DefaultTagPattern
	}
	if cfg.YearPattern == "" {
		cfg.YearPattern = DefaultYearPattern
	}
	if cfg.OwnerPattern == "" {
		cfg.OwnerPattern = DefaultOwnerPattern
	}
	if cfg.MessageText == "" {
		cfg.MessageText = defaultMessageText
	}
	if cfg.TagText == "" {
		cfg.TagText = defaultTagText
	}

	p := &Parser{order: order, msgText: cfg.MessageText, tagText: cfg.TagText}

	var err error
	if p.msgRe, err = regexp.Compile(cfg.MessagePattern); err != nil {
		return nil, fmt.Errorf("copyright: message pattern: %w", err)
	}
	if p.tagRe, err = regexp.Compile(cfg.TagPattern); err != nil {
		return nil, fmt.Errorf("copyright: tag pattern: %w", err)
	}
	if p.yearRe, err = regexp.Compile(cfg.YearPattern); err != nil {
		return nil, fmt.Errorf("copyright: year pattern: %w", err)
	}
	if p.ownerRe, err = regexp.Compile(cfg.OwnerPattern); err != nil {
		return nil, fmt.Errorf("copyright: owner pattern: %w", err)
	}
	return p, nil
}

// NewEnglish returns an Order1 parser with the default English grammar.
func NewEnglish() *Parser {
	p, err := New(Order1, Config{})
	if err != nil {
		panic(err)
	}
	return p
}

// Valid reports whether the previous ParseLine call succeeded.
func (p *Parser) Valid() bool {
	return p.valid
}

// Text returns the last successfully parsed copyright line.
func (p *Parser) Text() string {
	return p.line
}

// Years returns the chronological year list from the last valid parse.
func (p *Parser) Years() []int {
	return p.years
}

// Owner returns the owner text from the last valid parse.
func (p *Parser) Owner() string {
	return p.owner
}

// AddOwner appends a co-owner to the in-memory owner field. It fails when
// no valid parse exists to amend.
func (p *Parser) AddOwner(newOwner string) bool {
	if !p.valid {
		return false
	}
	p.owner += ", " + newOwner
	return true
}

// ReplaceOwner replaces the in-memory owner field.
func (p *Parser) ReplaceOwner(newOwner string) bool {
	p.owner = newOwner
	return true
}

// IsCopyrightLine reports whether the line holds all four components in
// the policy's required relative order.
func (p *Parser) IsCopyrightLine(line string) bool {
	msgLoc := p.msgRe.FindStringIndex(line)
	tagLoc := p.tagRe.FindStringIndex(line)
	years := p.parseYears(line)

	if msgLoc == nil || tagLoc == nil || !years.valid() {
		return false
	}

	switch p.order {
	case Order1:
		owner, ok := p.parseOwner(line[years.end:], years.end)
		if !ok {
			return false
		}
		return msgLoc[1] < tagLoc[0] &&
			tagLoc[1] < years.start &&
			years.end < owner.start

	case Order2:
		owner, ok := p.parseOwner(line[:msgLoc[0]], 0)
		if !ok {
			return false
		}
		return owner.start < msgLoc[0] &&
			msgLoc[1] < tagLoc[0] &&
			tagLoc[1] < years.start
	}
	return false
}

// ParseLine parses the line into its components, replacing any previous
// parse state. It returns false and invalidates the state when a
// component is missing.
func (p *Parser) ParseLine(line string) bool {
	p.valid = false

	msgLoc := p.msgRe.FindStringIndex(line)
	tagLoc := p.tagRe.FindStringIndex(line)
	years := p.parseYears(line)

	if msgLoc == nil || tagLoc == nil || !years.valid() {
		return false
	}

	var owner subText
	var leading string
	var ok bool

	switch p.order {
	case Order1:
		if owner, ok = p.parseOwner(line[years.end:], years.end); !ok {
			return false
		}
		leading = line[:msgLoc[0]]
		p.setTrailing(line, owner.end)
	case Order2:
		if owner, ok = p.parseOwner(line[:msgLoc[0]], 0); !ok {
			return false
		}
		leading = line[:owner.start]
		p.setTrailing(line, years.end)
	}

	p.valid = true
	p.line = line
	p.leading = leading
	p.message = line[msgLoc[0]:msgLoc[1]]
	p.tag = line[tagLoc[0]:tagLoc[1]]
	p.years = years.values
	p.owner = owner.text
	return true
}

// parseYears collects every year match in order with its offsets.
func (p *Parser) parseYears(line string) yearList {
	years := yearList{start: -1, end: -1}
	for _, loc := range p.yearRe.FindAllStringIndex(line, -1) {
		var value int
		if _, err := fmt.Sscanf(line[loc[0]:loc[1]], "%d", &value); err != nil {
			continue
		}
		years.values = append(years.values, value)
		if years.start < 0 {
			years.start = loc[0]
		}
		if loc[1] > years.end {
			years.end = loc[1]
		}
	}
	return years
}

// parseOwner scans the substring for the leading run of owner-class
// characters and returns the trimmed run with offsets in the full line.
func (p *Parser) parseOwner(sub string, base int) (subText, bool) {
	runEnd := 0
	for runEnd < len(sub) && p.ownerRe.MatchString(string(sub[runEnd])) {
		runEnd++
	}

	owner := newSubText(sub[:runEnd], base)
	if owner.text == "" {
		return subText{}, false
	}
	return owner, true
}

// setTrailing captures any non-blank text after the last component.
func (p *Parser) setTrailing(line string, from int) {
	p.trailing = ""
	p.trailingStart = -1

	rest := line[from:]
	trimmed := newSubText(rest, from)
	if trimmed.text == "" {
		return
	}
	p.trailing = trimmed.text
	p.trailingStart = trimmed.start
}

// yearString renders a single year or a create-lastModified range.
// A zero lastModYear means absent.
func yearString(createYear, lastModYear int) string {
	if lastModYear != 0 && lastModYear != createYear {
		return fmt.Sprintf("%d-%d", createYear, lastModYear)
	}
	return fmt.Sprintf("%d", createYear)
}

// assembleMsg renders the components in the policy's field order.
func (p *Parser) assembleMsg(owner, message, tag string, createYear, lastModYear int) string {
	years := yearString(createYear, lastModYear)
	if p.order == Order2 {
		return owner + " " + message + " " + tag + " " + years
	}
	return message + " " + tag + " " + years + " " + owner
}

// CreateMsg builds a copyright line from scratch using the configured
// literal message and tag texts. No prior parse is required.
func (p *Parser) CreateMsg(owner string, createYear, lastModYear int) string {
	return p.assembleMsg(owner, p.msgText, p.tagText, createYear, lastModYear)
}

// BuildNewMsg rebuilds the parsed line with new years, keeping the parsed
// message, tag and owner. With decoration the captured leading text is
// prepended and the captured trailing text re-appended, re-padded toward
// its original column. Column alignment after a year digit-count change
// is best effort. Returns "" when no valid parse exists.
func (p *Parser) BuildNewMsg(createYear, lastModYear int, withDecoration bool) string {
	if !p.valid {
		return ""
	}

	var buf strings.Builder
	if withDecoration {
		buf.WriteString(p.leading)
	}
	buf.WriteString(p.assembleMsg(p.owner, p.message, p.tag, createYear, lastModYear))

	if withDecoration && p.trailing != "" {
		pad := p.trailingStart - buf.Len()
		if pad < 1 {
			pad = 1
		}
		buf.WriteString(strings.Repeat(" ", pad))
		buf.WriteString(p.trailing)
	}
	return buf.String()
}
