package rule

// Resolver maps crime ids to the single rule that governs them.
// When several rules govern a crime the first one in corpus order wins.
type Resolver struct {
	rules   []Rule
	byCrime map[string]*Rule
}

// NewResolver indexes rules for the known crimes. Crimes outside the list are resolved on demand
// with the same first-match scan.
func NewResolver(rules []Rule, crimes []string) *Resolver {
	r := Resolver{
		rules:   rules,
		byCrime: make(map[string]*Rule, len(crimes)),
	}
	for _, crime := range crimes {
		if rule, found := r.scan(crime); found {
			r.byCrime[crime] = rule
		}
	}
	return &r
}

// Resolve returns the rule applicable to crime, or false when none exists.
func (r *Resolver) Resolve(crime string) (*Rule, bool) {
	if rule, found := r.byCrime[crime]; found {
		return rule, true
	}
	return r.scan(crime)
}

// Rules returns the rules in corpus order.
func (r *Resolver) Rules() []Rule {
	return r.rules
}

// Len returns the number of rules.
func (r *Resolver) Len() int {
	return len(r.rules)
}

func (r *Resolver) scan(crime string) (*Rule, bool) {
	for i := range r.rules {
		if r.rules[i].Governs(crime) {
			return &r.rules[i], true
		}
	}
	return nil, false
}
