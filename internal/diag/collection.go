package diag

// Reporter: минимальный контракт получения issues от фаз.
type Reporter interface {
	Report(issue Issue)
}

// Collection is an ordered, non-deduplicated sequence of issues.
// The zero value is empty and ready to use.
type Collection struct {
	items []Issue
}

// NewCollection builds a collection from issues, keeping their order.
func NewCollection(issues ...Issue) Collection {
	c := Collection{}
	c.items = append(c.items, issues...)
	return c
}

// Report implements Reporter.
func (c *Collection) Report(issue Issue) {
	c.Push(issue)
}

func (c *Collection) Push(issue Issue) {
	c.items = append(c.items, issue)
}

// Extend appends every issue of other, in order.
func (c *Collection) Extend(other Collection) {
	c.items = append(c.items, other.items...)
}

// длина
func (c Collection) Len() int {
	return len(c.items)
}

// Items возвращает read-only slice issues.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (c Collection) Items() []Issue {
	return c.items
}

// HighestLevel returns the highest level present; false when empty.
func (c Collection) HighestLevel() (Level, bool) {
	if len(c.items) == 0 {
		return LevelHelp, false
	}
	highest := c.items[0].Level
	for _, issue := range c.items[1:] {
		highest = max(highest, issue.Level)
	}
	return highest, true
}

// HasErrors reports whether any issue is at LevelError.
func (c Collection) HasErrors() bool {
	level, ok := c.HighestLevel()
	return ok && level >= LevelError
}

// OnlyFixable returns the fixable subset, preserving relative order.
func (c Collection) OnlyFixable() Collection {
	return c.filter(Issue.Fixable)
}

// FilterMinLevel drops issues below level, preserving relative order.
func (c Collection) FilterMinLevel(level Level) Collection {
	return c.filter(func(i Issue) bool { return i.Level >= level })
}

func (c Collection) filter(keep func(Issue) bool) Collection {
	out := Collection{items: make([]Issue, 0, len(c.items))}
	for _, issue := range c.items {
		if keep(issue) {
			out.items = append(out.items, issue)
		}
	}
	return out
}

// CountByLevel returns the number of issues per level.
func (c Collection) CountByLevel() map[Level]int {
	counts := make(map[Level]int, len(Levels))
	for _, issue := range c.items {
		counts[issue.Level]++
	}
	return counts
}
