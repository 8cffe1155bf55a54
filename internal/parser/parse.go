package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Verbs() []string { return p.registry.Verbs() }

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	tokens, intent.Player = splitPlayer(tokens)
	if len(tokens) == 0 {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("What should P%d do?", intent.Player)}
		return intent
	}

	best, alts := p.registry.matchCommand(tokens)
	if best.Canonical == "" || best.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try " + strings.Join(p.registry.Verbs(), ", ") + ".",
		}
		return intent
	}
	if len(alts) > 0 && tooClose(best, alts[0]) {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: []Intent{verbOnly(raw, intent.Player, best), verbOnly(raw, intent.Player, alts[0])},
		}
		return intent
	}

	intent.Verb = best.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(best.Score)
	argsTokens := tokens[min(best.Consumed, len(tokens)):]
	def, _ := p.registry.command(intent.Verb)
	if def.TakesQuantity {
		argsTokens, intent.Quantity = splitQuantity(argsTokens)
	}

	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, intent.Player, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) < def.MinArgs {
		if def.Canonical == "buy" {
			if options := buildShopOptions(ctx, intent.Player, 5); len(options) > 0 {
				intent.Clarify = &ClarifyQuestion{Prompt: "What should I buy?", Options: options}
				intent.Confidence = 0.46
				return intent
			}
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

// tooClose reports whether the runner-up is near enough to the best verb
// that the line should be confirmed instead of executed.
func tooClose(best, alt verbMatch) bool {
	return alt.Score > 0.65 && best.Score-alt.Score < 0.05
}

func verbOnly(raw string, player int, m verbMatch) Intent {
	return Intent{
		Raw:        raw,
		Normalised: m.Canonical,
		Kind:       commandKind(m.Canonical),
		Verb:       m.Canonical,
		Player:     player,
		Confidence: clampScore(m.Score),
	}
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "index", "achievements", "board", "map", "time":
		return Query
	default:
		return Command
	}
}

// splitPlayer peels a leading "p1", "player2" or "player 2".
func splitPlayer(tokens []string) ([]string, int) {
	if len(tokens) == 0 {
		return tokens, 0
	}
	if n := parsePlayerToken(tokens[0]); n > 0 {
		return tokens[1:], n
	}
	if tokens[0] == "player" && len(tokens) > 1 {
		if n := parsePlayerToken(tokens[1]); n > 0 {
			return tokens[2:], n
		}
	}
	return tokens, 0
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, player int, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	switch def.Canonical {
	case "move", "face":
		mapped := mapDirection(args[0])
		score := 0.95
		if mapped == "" {
			entity, confidence, tie := resolveDirection(args[0], ctx.Directions)
			if tie {
				return nil, &ClarifyQuestion{
					Prompt: "Which direction?",
					Options: []Intent{
						{Kind: Command, Verb: def.Canonical, Player: player, Args: []string{entity[0]}, Confidence: confidence},
						{Kind: Command, Verb: def.Canonical, Player: player, Args: []string{entity[1]}, Confidence: confidence - 0.01},
					},
				}, 0.5
			}
			if len(entity) == 0 {
				return nil, &ClarifyQuestion{Prompt: fmt.Sprintf("%q is not a direction. Use up, down, left or right.", args[0])}, 0.3
			}
			mapped, score = entity[0], confidence
		}
		return append([]string{mapped}, args[1:]...), nil, clampScore(score)

	case "buy":
		// Shop names run to three words; match the whole tail.
		joined := strings.Join(args, " ")
		entity, confidence, tie := resolveEntity(joined, ctx.Shop)
		if tie && len(entity) >= 2 {
			options := make([]Intent, 0, 2)
			for idx := 0; idx < 2; idx++ {
				options = append(options, Intent{
					Kind:       Command,
					Verb:       "buy",
					Player:     player,
					Args:       []string{entity[idx]},
					Confidence: confidence - float64(idx)*0.01,
				})
			}
			return nil, &ClarifyQuestion{Prompt: "Did you mean buy?", Options: options}, 0.52
		}
		if len(entity) == 1 {
			return entity, nil, confidence
		}
		return []string{joined}, nil, 0.6
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for _, token := range args {
		resolved = append(resolved, token)
		score -= 0.02
	}
	return resolved, nil, clampScore(score)
}

func resolveDirection(token string, known []string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if d := mapDirection(n); d != "" {
		return []string{d}, 0.98, false
	}
	if len(known) == 0 {
		known = []string{"up", "down", "left", "right", "north", "south", "east", "west"}
	}
	matches, score, tie := bestMatches(n, known)
	for i, m := range matches {
		if d := mapDirection(m); d != "" {
			matches[i] = d
		}
	}
	if tie && len(matches) == 2 && matches[0] == matches[1] {
		return matches[:1], score, false
	}
	return matches, score, tie
}

func resolveEntity(token string, pool []string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	return bestMatches(n, uniqueNormalised(pool))
}

// entityScore rates cand as a reading of token, or reports no match.
func entityScore(token, cand string) (float64, bool) {
	switch {
	case token == cand:
		return 1, true
	case len(token) >= 2 && strings.HasPrefix(cand, token):
		return 0.9, true
	case containsWord(cand, token):
		// "golden" names both the rod and the lure.
		return 0.8, true
	}
	dist := levenshtein.ComputeDistance(token, cand)
	if dist > levenshteinLimit(len(cand)) {
		return 0, false
	}
	return clampScore(0.72 - 0.08*float64(dist)), true
}

// bestMatches ranks the pool against token. Two near-equal leaders are
// returned together with tie set so the caller can ask.
func bestMatches(token string, pool []string) ([]string, float64, bool) {
	type hit struct {
		val   string
		score float64
	}
	var hits []hit
	for _, cand := range pool {
		if sc, ok := entityScore(token, cand); ok {
			hits = append(hits, hit{cand, sc})
		}
	}
	if len(hits) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].val < hits[j].val
	})

	top := hits[0]
	if len(hits) > 1 && hits[1].score > 0.6 && top.score-hits[1].score < 0.05 {
		return []string{top.val, hits[1].val}, top.score, true
	}
	return []string{top.val}, top.score, false
}

// buildShopOptions offers the first few shop entries when buy has no item.
func buildShopOptions(ctx ParseContext, player int, limit int) []Intent {
	var options []Intent
	for _, item := range uniqueNormalised(ctx.Shop) {
		if len(options) == limit {
			break
		}
		options = append(options, Intent{Kind: Command, Verb: "buy", Player: player, Args: []string{item}, Confidence: 0.88})
	}
	return options
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func uniqueNormalised(list []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(list))
	for _, v := range list {
		n := normaliseInput(v)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent back into console syntax, e.g.
// "p1 move left 500ms".
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	parts := make([]string, 0, len(intent.Args)+3)
	if intent.Player > 0 {
		parts = append(parts, fmt.Sprintf("p%d", intent.Player))
	}
	parts = append(parts, verb)
	for _, arg := range intent.Args {
		if n := normaliseInput(arg); n != "" {
			parts = append(parts, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		parts = append(parts, normaliseInput(intent.Quantity.Raw))
	}
	return strings.Join(parts, " ")
}
