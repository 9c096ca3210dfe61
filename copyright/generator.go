package copyright

// Generator produces new copyright lines from a previously parsed line
// and new dates, or from scratch when no parsed line is available.
type Generator struct {
	parser *Parser
}

// NewGenerator wraps the given parser; nil selects the English default.
func NewGenerator(parser *Parser) *Generator {
	if parser == nil {
		parser = NewEnglish()
	}
	return &Generator{parser: parser}
}

// Parser returns the wrapped parser.
func (g *Generator) Parser() *Parser {
	return g.parser
}

// isMultiYear reports whether the requested span covers more than one
// year. A zero lastModYear means absent.
func isMultiYear(createYear, lastModYear int) bool {
	return lastModYear != 0 && lastModYear != createYear
}

// NewMsg decides whether the parsed line needs rewriting for the given
// years and returns the resulting line. The recorded start year is a
// monotonic floor: a later createYear never moves it forward. When the
// requested span matches the parsed line the original text is returned
// with changed=false; a rewrite re-parses the new line so that repeating
// the call reports changed=false. Without a valid prior parse a fresh
// line for owner "None" is created and always reported as changed.
func (g *Generator) NewMsg(createYear, lastModYear int) (changed bool, text string) {
	if !g.parser.Valid() {
		return true, g.parser.CreateMsg("None", createYear, lastModYear)
	}

	years := g.parser.Years()
	currentStart := years[0]

	// Don't move the copyright start forward.
	startYear := createYear
	if currentStart < createYear {
		startYear = currentStart
	}

	if isMultiYear(createYear, lastModYear) || len(years) > 1 {
		currentLastMod := years[len(years)-1]
		if currentStart == startYear && currentLastMod == lastModYear {
			return false, g.parser.Text()
		}
	} else if len(years) == 1 && startYear == currentStart {
		return false, g.parser.Text()
	}

	text = g.parser.BuildNewMsg(startYear, lastModYear, true)
	g.parser.ParseLine(text)
	return true, text
}

// CreateTransition freezes the parsed line at transitionYear and creates
// a follow-up line for the new owner spanning transitionYear to
// lastModYear. Used when ownership changes mid-history.
func (g *Generator) CreateTransition(createYear, transitionYear, lastModYear int, newOwner string) (changed bool, original, next string) {
	changed, original = g.NewMsg(createYear, transitionYear)
	g.parser.ReplaceOwner(newOwner)
	next = g.parser.BuildNewMsg(transitionYear, lastModYear, true)
	return changed, original, next
}

// AddCopyrightOwner appends a co-owner to the parsed line and rebuilds it
// for the given years. Fails without a valid prior parse.
func (g *Generator) AddCopyrightOwner(createYear, lastModYear int, newOwner string) (bool, string) {
	if !g.parser.AddOwner(newOwner) {
		return false, ""
	}
	return true, g.parser.BuildNewMsg(createYear, lastModYear, true)
}

// CreateNew builds a copyright line from scratch for the given owner.
func (g *Generator) CreateNew(owner string, createYear, lastModYear int) string {
	return g.parser.CreateMsg(owner, createYear, lastModYear)
}
