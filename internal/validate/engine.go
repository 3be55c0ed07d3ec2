package validate

import (
	"strings"
	"time"

	"github.com/TirtaBytes/nikcheck/internal/refdata"
)

// Engine classifies records against the rule table. It holds the per-run
// read-only context: the city reference set and the clock used by the
// birth-date rule. One Engine handles one batch; nothing carries over
// between runs.
type Engine struct {
	Cities refdata.CitySet

	// Now supplies the current time for the birth-date rule. Nil means
	// time.Now. Tests pin it for determinism.
	Now func() time.Time
}

// NewEngine returns an engine over the given city set.
func NewEngine(cities refdata.CitySet) *Engine {
	return &Engine{Cities: cities}
}

// Classify runs every rule against every record and partitions the batch.
// Messy records carry their violation tags and rendered diagnostic; clean
// records carry neither. Original row order is preserved in both outputs,
// and every record lands in exactly one of the two.
func (e *Engine) Classify(records []Record) (messy, clean []Classified) {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	env := ruleEnv{cities: e.Cities, today: now()}

	for i := range records {
		c := e.classifyOne(&records[i], env)
		if c.Clean() {
			clean = append(clean, c)
		} else {
			messy = append(messy, c)
		}
	}
	return messy, clean
}

func (e *Engine) classifyOne(r *Record, env ruleEnv) Classified {
	c := Classified{Record: *r}
	var desc strings.Builder
	for _, ru := range rules {
		if ru.valid(r, env) {
			continue
		}
		c.Violations = append(c.Violations, ru.Field)
		desc.WriteString(ru.Clause(r))
	}
	c.CheckDesc = desc.String()
	return c
}
