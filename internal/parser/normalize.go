package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// normaliseInput lowercases and strips punctuation. A dot survives only
// between digits so "1.5s" stays a duration.
func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	runes := []rune(raw)
	var b strings.Builder
	lastSpace := false
	for i, r := range runes {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == '.' && i > 0 && i+1 < len(runes) && isDigit(runes[i-1]) && isDigit(runes[i+1]) {
			b.WriteRune(r)
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

var unitAliases = []struct{ long, short string }{
	{"milliseconds", "ms"},
	{"millis", "ms"},
	{"seconds", "s"},
	{"second", "s"},
	{"secs", "s"},
	{"sec", "s"},
	{"minutes", "m"},
	{"minute", "m"},
	{"mins", "m"},
	{"min", "m"},
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	if token == "all" || token == "everything" {
		return &Quantity{Raw: token, N: -1, Unit: UnitAll}
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n, Unit: UnitCount}
	}
	spec := token
	for _, a := range unitAliases {
		if strings.HasSuffix(spec, a.long) {
			spec = strings.TrimSuffix(spec, a.long) + a.short
			break
		}
	}
	if d, err := time.ParseDuration(spec); err == nil && d >= 0 {
		return &Quantity{Raw: token, N: int(d / time.Millisecond), Unit: UnitDuration, Duration: d}
	}
	return nil
}

// parsePlayerToken accepts p1, p2, player1 and friends.
func parsePlayerToken(token string) int {
	token = strings.TrimPrefix(token, "player")
	token = strings.TrimPrefix(token, "p")
	switch token {
	case "1":
		return 1
	case "2":
		return 2
	default:
		return 0
	}
}

func mapDirection(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "u", "up", "n", "north":
		return "up"
	case "d", "down", "s", "south":
		return "down"
	case "l", "left", "w", "west":
		return "left"
	case "r", "right", "e", "east":
		return "right"
	default:
		return ""
	}
}
