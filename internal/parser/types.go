package parser

import "time"

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

type QuantityUnit int

const (
	UnitCount QuantityUnit = iota
	UnitAll
	UnitDuration
)

// Quantity is a trailing amount: a count, "all", or a duration.
type Quantity struct {
	Raw      string
	N        int
	Unit     QuantityUnit
	Duration time.Duration
}

// Intent is one parsed console line. Player is 0 when the line named nobody.
type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Player     int
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries the names the parser may fuzzy-match arguments
// against.
type ParseContext struct {
	Shop       []string
	Directions []string
}

type CommandDef struct {
	Canonical     string
	Aliases       []string
	MinArgs       int
	MaxArgs       int
	TakesQuantity bool
	HandlerKey    string
}
