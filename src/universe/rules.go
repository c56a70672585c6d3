package universe

import (
	"errors"
	"fmt"
	"strings"
)

//MaxNeighbours is the size of the Moore neighbourhood
const MaxNeighbours = 8

var ErrInvalidRule = errors.New("invalid rule")

//SurviveTable tells whether a live cell survives, indexed by neighbours count + 1
//slot 0 is never set
type SurviveTable [MaxNeighbours + 2]bool

//BornTable tells whether a dead cell becomes alive, indexed by neighbours count
type BornTable [MaxNeighbours + 1]bool

//CompileSurvive builds the survive lookup table from the set of counts
//the order and duplicates of counts don't matter
func CompileSurvive(counts []int) (t SurviveTable) {
	for _, c := range counts {
		checkCount(c)
		t[c+1] = true
	}
	return
}

//CompileBorn builds the born lookup table from the set of counts
func CompileBorn(counts []int) (t BornTable) {
	for _, c := range counts {
		checkCount(c)
		t[c] = true
	}
	return
}

//RuleSet keeps the survive and born counts along with their lookup tables
//the tables are recompiled on every change of the counts and never edited directly
type RuleSet struct {
	survive      [MaxNeighbours + 1]bool
	born         [MaxNeighbours + 1]bool
	surviveTable SurviveTable
	bornTable    BornTable
}

//NewRuleSet creates the rule set, panics if any count is outside 0..8
func NewRuleSet(survive []int, born []int) *RuleSet {
	r := &RuleSet{}
	for _, c := range survive {
		checkCount(c)
		r.survive[c] = true
	}
	for _, c := range born {
		checkCount(c)
		r.born[c] = true
	}
	r.compile()
	return r
}

//ConwayRules returns the classic rules: survive with 2 or 3 neighbours, born with 3
func ConwayRules() *RuleSet {
	return NewRuleSet([]int{2, 3}, []int{3})
}

//ToggleSurvive adds (enabled) or removes the count from the survive set
func (r *RuleSet) ToggleSurvive(count int, enabled bool) {
	checkCount(count)
	if r.survive[count] == enabled {
		return
	}
	r.survive[count] = enabled
	r.surviveTable = CompileSurvive(r.SurviveCounts())
}

//ToggleBorn adds (enabled) or removes the count from the born set
func (r *RuleSet) ToggleBorn(count int, enabled bool) {
	checkCount(count)
	if r.born[count] == enabled {
		return
	}
	r.born[count] = enabled
	r.bornTable = CompileBorn(r.BornCounts())
}

//SurviveCounts returns the survive counts in ascending order
func (r *RuleSet) SurviveCounts() []int {
	return members(r.survive)
}

//BornCounts returns the born counts in ascending order
func (r *RuleSet) BornCounts() []int {
	return members(r.born)
}

func (r *RuleSet) Survives(count int) bool {
	checkCount(count)
	return r.survive[count]
}

func (r *RuleSet) Born(count int) bool {
	checkCount(count)
	return r.born[count]
}

func (r *RuleSet) SurviveTable() SurviveTable {
	return r.surviveTable
}

func (r *RuleSet) BornTable() BornTable {
	return r.bornTable
}

//NextState returns the next state of the cell with given state and live neighbours count
func (r *RuleSet) NextState(alive bool, neighbours int) bool {
	if alive {
		return r.surviveTable[neighbours+1]
	}
	return r.bornTable[neighbours]
}

//Clone returns an independent copy of the rule set
func (r *RuleSet) Clone() *RuleSet {
	c := *r
	return &c
}

//Equal reports whether both rule sets have the same counts
func (r *RuleSet) Equal(o *RuleSet) bool {
	return r.survive == o.survive && r.born == o.born
}

//String returns the rule in B/S notation, for example B3/S23
func (r *RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, c := range r.BornCounts() {
		b.WriteByte(byte('0' + c))
	}
	b.WriteString("/S")
	for _, c := range r.SurviveCounts() {
		b.WriteByte(byte('0' + c))
	}
	return b.String()
}

//ParseRules parses the rule in B/S notation ("B3/S23", "s23/b3")
//or in the survive/born notation ("23/3")
func ParseRules(s string) (*RuleSet, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w %q: expected two parts separated by '/'", ErrInvalidRule, s)
	}
	var survive, born []int
	var haveSurvive, haveBorn bool
	for i, p := range parts {
		kind := byte(0)
		if p != "" {
			switch p[0] {
			case 'B', 'b', 'S', 's':
				kind = p[0] | 0x20
				p = p[1:]
			}
		}
		if kind == 0 {
			//legacy notation, survive goes first
			kind = "sb"[i]
		}
		counts, err := parseCounts(p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidRule, s, err)
		}
		if kind == 's' {
			if haveSurvive {
				return nil, fmt.Errorf("%w %q: survive part is repeated", ErrInvalidRule, s)
			}
			survive, haveSurvive = counts, true
		} else {
			if haveBorn {
				return nil, fmt.Errorf("%w %q: born part is repeated", ErrInvalidRule, s)
			}
			born, haveBorn = counts, true
		}
	}
	return NewRuleSet(survive, born), nil
}

func parseCounts(s string) ([]int, error) {
	counts := make([]int, 0, len(s))
	for _, ch := range s {
		if ch < '0' || ch > '0'+MaxNeighbours {
			return nil, fmt.Errorf("unexpected %q, neighbours count must be 0..%v", ch, MaxNeighbours)
		}
		counts = append(counts, int(ch-'0'))
	}
	return counts, nil
}

func (r *RuleSet) compile() {
	r.surviveTable = CompileSurvive(r.SurviveCounts())
	r.bornTable = CompileBorn(r.BornCounts())
}

func members(set [MaxNeighbours + 1]bool) []int {
	counts := make([]int, 0, len(set))
	for c, ok := range set {
		if ok {
			counts = append(counts, c)
		}
	}
	return counts
}

//checkCount panics if the neighbours count can't exist in the 8 cells neighbourhood
func checkCount(count int) {
	if count < 0 || count > MaxNeighbours {
		panic(fmt.Sprintf("universe: neighbours count %v is out of range 0..%v", count, MaxNeighbours))
	}
}
