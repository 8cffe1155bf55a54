package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	canonical = normaliseInput(canonical)
	cmd, ok := r.commands[canonical]
	return cmd, ok
}

// Verbs lists every canonical command in sorted order.
func (r *Registry) Verbs() []string {
	out := make([]string, 0, len(r.commands))
	for name := range r.commands {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// verbMatch is one way the leading tokens of a line could name a command.
type verbMatch struct {
	Canonical string
	Consumed  int
	Score     float64
}

const maxAlternates = 4

// score rates how well the start of tokens names this phrase. Exact and
// alias hits win, then a one-word prefix, then a bounded edit distance.
func (ph commandPhrase) score(tokens []string, line string) (verbMatch, bool) {
	n := len(ph.tokens)
	if n == 0 {
		return verbMatch{}, false
	}
	head := min(len(tokens), n)
	lead := strings.Join(tokens[:head], " ")
	m := verbMatch{Canonical: ph.canonical, Consumed: head}
	isAlias := ph.alias != ph.canonical

	switch {
	case head == n && lead == ph.alias:
		m.Score = 1.0
		if isAlias {
			m.Score = 0.97
		}
		// Longer phrases beat their own first word ("fish index" over "fish").
		m.Score += 0.1 * float64(head-1)
		return m, true
	case n == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(ph.alias, tokens[0]):
		m.Consumed, m.Score = 1, 0.9
		return m, true
	}

	if len(lead) < 3 {
		return verbMatch{}, false
	}
	dist := levenshtein.ComputeDistance(lead, ph.alias)
	if dist > levenshteinLimit(len(ph.alias)) {
		return verbMatch{}, false
	}
	m.Score = 0.72 - 0.08*float64(dist)
	if strings.Contains(line, ph.alias) {
		m.Score += 0.04
	}
	if isAlias {
		m.Score += 0.03
	}
	return m, true
}

// matchCommand returns the best verb for tokens and up to four runners-up
// naming other commands.
func (r *Registry) matchCommand(tokens []string) (verbMatch, []verbMatch) {
	if len(tokens) == 0 {
		return verbMatch{}, nil
	}
	line := strings.Join(tokens, " ")
	var found []verbMatch
	for _, ph := range r.phrases {
		if m, ok := ph.score(tokens, line); ok {
			found = append(found, m)
		}
	}
	if len(found) == 0 {
		return verbMatch{}, nil
	}
	sort.SliceStable(found, func(i, j int) bool {
		a, b := found[i], found[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Consumed != b.Consumed {
			return a.Consumed > b.Consumed
		}
		return a.Canonical < b.Canonical
	})

	best := found[0]
	var alts []verbMatch
	seen := map[string]bool{best.Canonical: true}
	for _, m := range found[1:] {
		if len(alts) == maxAlternates {
			break
		}
		if !seen[m.Canonical] {
			seen[m.Canonical] = true
			alts = append(alts, m)
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands"}, MaxArgs: 1},

		// Player keys.
		{Canonical: "act", Aliases: []string{"use", "interact", "fish", "cast", "e"}},
		{Canonical: "eat", Aliases: []string{"consume", "wake", "get up"}},
		{Canonical: "bait", Aliases: []string{"cycle bait", "switch bait", "next bait"}},
		{Canonical: "net", Aliases: []string{"throw net", "cast net"}},
		{Canonical: "menu", Aliases: []string{"give menu", "open menu"}},
		{Canonical: "up", Aliases: []string{"cursor up"}},
		{Canonical: "down", Aliases: []string{"cursor down"}},
		{Canonical: "escape", Aliases: []string{"esc", "close", "back"}},
		{Canonical: "move", Aliases: []string{"walk", "go", "step", "head"}, MinArgs: 1, MaxArgs: 1, TakesQuantity: true},
		{Canonical: "face", Aliases: []string{"turn"}, MinArgs: 1, MaxArgs: 1},

		// Scripted helpers built from the keys above.
		{Canonical: "wait", Aliases: []string{"idle", "pause", "skip"}, TakesQuantity: true},
		{Canonical: "reel", Aliases: []string{"hook", "strike"}},
		{Canonical: "buy", Aliases: []string{"purchase", "shop for"}, MinArgs: 1, MaxArgs: 4},
		{Canonical: "sell", Aliases: []string{"sell catch", "sell all"}},
		{Canonical: "give", Aliases: []string{"gift", "pay"}, TakesQuantity: true},
		{Canonical: "goto", Aliases: []string{"teleport", "tp", "place"}, MinArgs: 2, MaxArgs: 3},

		// Views.
		{Canonical: "status", Aliases: []string{"stats", "players"}},
		{Canonical: "index", Aliases: []string{"fish index", "catalog", "catches"}},
		{Canonical: "achievements", Aliases: []string{"achieve", "trophies"}},
		{Canonical: "board", Aliases: []string{"leaderboard", "scores", "ranking"}},
		{Canonical: "map", Aliases: []string{"look", "view"}},
		{Canonical: "time", Aliases: []string{"clock"}},
		{Canonical: "quit", Aliases: []string{"exit", "q"}},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
