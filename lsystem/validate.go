package lsystem

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrorKind names a validation failure
type ErrorKind int

const (
	AxiomIsEmpty ErrorKind = iota
	BadAngleValue
	BadLengthValue
	BadIterationsValue
	WrongRuleSyntax
	RuleConstantIsEmpty
	RuleConstantIsNotValidChar
	RuleConditionIsEmpty
	NonAlphabetSymbolAxiom
	NonAlphabetSymbolCondition
)

var summaries = map[ErrorKind]string{
	AxiomIsEmpty:               "Axiom value is empty.",
	BadAngleValue:              "The angle value is either greater than 360 degrees or less than 0 degrees.",
	BadLengthValue:             "The 'length' value is lower than 0.",
	BadIterationsValue:         "The 'iterations' value is lower than 1.",
	WrongRuleSyntax:            "Wrong rule syntax. There have to be constant, delimiter, and condition",
	RuleConstantIsEmpty:        "Rule constant is a whitespace",
	RuleConstantIsNotValidChar: "Rule constant is not a valid UTF-8 symbol.",
	RuleConditionIsEmpty:       "Rule condition consists of less than 1 symbol.",
	NonAlphabetSymbolCondition: "There's symbol in a rule that is not from an alphabet.",
	NonAlphabetSymbolAxiom:     "There's symbol in the axiom that is not from an alphabet.",
}

// ValidationError is returned by Validate. Rule is 1-based and zero when the
// error is not about a rule.
type ValidationError struct {
	Kind   ErrorKind
	Rule   int
	Symbol rune
}

// Sentinels for errors.Is
var (
	ErrAxiomIsEmpty               = &ValidationError{Kind: AxiomIsEmpty}
	ErrBadAngleValue              = &ValidationError{Kind: BadAngleValue}
	ErrBadLengthValue             = &ValidationError{Kind: BadLengthValue}
	ErrBadIterationsValue         = &ValidationError{Kind: BadIterationsValue}
	ErrWrongRuleSyntax            = &ValidationError{Kind: WrongRuleSyntax}
	ErrRuleConstantIsEmpty        = &ValidationError{Kind: RuleConstantIsEmpty}
	ErrRuleConstantIsNotValidChar = &ValidationError{Kind: RuleConstantIsNotValidChar}
	ErrRuleConditionIsEmpty       = &ValidationError{Kind: RuleConditionIsEmpty}
	ErrNonAlphabetSymbolAxiom     = &ValidationError{Kind: NonAlphabetSymbolAxiom}
	ErrNonAlphabetSymbolCondition = &ValidationError{Kind: NonAlphabetSymbolCondition}
)

func (e *ValidationError) Error() string {
	return summaries[e.Kind]
}

// AdditionalInfo returns the rule index and symbol for display
func (e *ValidationError) AdditionalInfo() (string, bool) {
	switch e.Kind {
	case WrongRuleSyntax, RuleConstantIsEmpty, RuleConstantIsNotValidChar, RuleConditionIsEmpty:
		return fmt.Sprintf("Rule: %d", e.Rule), true
	case NonAlphabetSymbolCondition:
		return fmt.Sprintf("Rule: %d\nSymbol: %c", e.Rule, e.Symbol), true
	case NonAlphabetSymbolAxiom:
		return fmt.Sprintf("Symbol: %c", e.Symbol), true
	}
	return "", false
}

// Is matches any ValidationError of the same kind
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Params are the raw, user edited L-System settings
type Params struct {
	Axiom        string
	Angle        float64
	InitialAngle float64
	Length       float64
	Iterations   int
	Rules        []string
}

// Validate checks p in order and returns the first failure. On success it
// returns the compiled symbol to replacement mapping; a later rule for the
// same symbol replaces an earlier one.
func Validate(p Params) (map[rune]string, error) {
	if p.Axiom == "" {
		return nil, &ValidationError{Kind: AxiomIsEmpty}
	}
	if !angleInRange(p.Angle) || !angleInRange(p.InitialAngle) {
		return nil, &ValidationError{Kind: BadAngleValue}
	}
	if p.Length < 0 || math.IsNaN(p.Length) {
		return nil, &ValidationError{Kind: BadLengthValue}
	}
	if p.Iterations < 1 {
		return nil, &ValidationError{Kind: BadIterationsValue}
	}

	alphabet := make([]rune, 0, len(p.Rules))
	conditions := make([]string, 0, len(p.Rules))
	for i, line := range p.Rules {
		symbol, condition, err := ParseRule(line, i+1)
		if err != nil {
			return nil, err
		}
		alphabet = append(alphabet, symbol)
		conditions = append(conditions, condition)
	}

	inAlphabet := func(r rune) bool {
		if IsTerminal(r) {
			return true
		}
		for _, a := range alphabet {
			if a == r {
				return true
			}
		}
		return false
	}
	for _, r := range p.Axiom {
		if !inAlphabet(r) {
			return nil, &ValidationError{Kind: NonAlphabetSymbolAxiom, Symbol: r}
		}
	}
	for i, condition := range conditions {
		for _, r := range condition {
			if !inAlphabet(r) {
				return nil, &ValidationError{Kind: NonAlphabetSymbolCondition, Rule: i + 1, Symbol: r}
			}
		}
	}

	rules := make(map[rune]string, len(alphabet))
	for i, a := range alphabet {
		rules[a] = conditions[i]
	}
	return rules, nil
}

// ParseRule splits "<symbol> -> <replacement>". index is the 1-based rule
// number reported in errors.
func ParseRule(line string, index int) (rune, string, error) {
	symbol, size := utf8.DecodeRuneInString(line)
	rest := line[size:]
	if line == "" || !strings.HasPrefix(rest, RuleDelimiter) {
		return 0, "", &ValidationError{Kind: WrongRuleSyntax, Rule: index}
	}
	if unicode.IsSpace(symbol) {
		return 0, "", &ValidationError{Kind: RuleConstantIsEmpty, Rule: index}
	}
	if symbol == utf8.RuneError && size <= 1 {
		return 0, "", &ValidationError{Kind: RuleConstantIsNotValidChar, Rule: index}
	}
	condition := rest[len(RuleDelimiter):]
	if strings.TrimSpace(condition) == "" {
		return 0, "", &ValidationError{Kind: RuleConditionIsEmpty, Rule: index}
	}
	return symbol, condition, nil
}

func angleInRange(a float64) bool {
	return a >= 0 && a <= 360
}
