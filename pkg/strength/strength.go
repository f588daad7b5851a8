// Package strength scores passwords with a fixed rule table.
package strength

import (
	"unicode/utf8"
)

// Color is a tier colour name.
type Color string

const (
	Red    Color = "red"
	Orange Color = "orange"
	Yellow Color = "yellow"
	Green  Color = "green"
)

// Result is the score of one password.
type Result struct {
	Percent float64 `json:"percent"`
	Color   Color   `json:"color"`
	Hex     string  `json:"hex"`
	Label   string  `json:"label"`
}

// Rule contributes Bonus when Match holds.
type Rule struct {
	Name  string
	Bonus float64
	Match func(string) bool
}

// Rules is evaluated in full for every password; bonuses sum to 100.
var Rules = []Rule{
	{"length>=8", 20, minLength(8)},
	{"length>=12", 20, minLength(12)},
	{"length>=16", 10, minLength(16)},
	{"lowercase", 12.5, containsFunc(func(r rune) bool { return r >= 'a' && r <= 'z' })},
	{"uppercase", 12.5, containsFunc(func(r rune) bool { return r >= 'A' && r <= 'Z' })},
	{"digit", 12.5, containsFunc(func(r rune) bool { return r >= '0' && r <= '9' })},
	{"symbol", 12.5, containsFunc(func(r rune) bool { return !isASCIIAlnum(r) })},
}

type tier struct {
	min   float64
	color Color
	hex   string
	label string
}

// tiers are checked highest first; the last always matches.
var tiers = []tier{
	{80, Green, "#22c55e", "Strong"},
	{60, Yellow, "#eab308", "Good"},
	{40, Orange, "#f59e0b", "Fair"},
	{0, Red, "#ef4444", "Weak"},
}

// Calc scores password. Length is counted in code points.
func Calc(password string) Result {
	var score float64
	for _, rule := range Rules {
		if rule.Match(password) {
			score += rule.Bonus
		}
	}
	for _, t := range tiers {
		if score >= t.min {
			return Result{Percent: score, Color: t.color, Hex: t.hex, Label: t.label}
		}
	}
	// unreachable: the last tier has min 0
	return Result{Percent: score, Color: Red, Hex: "#ef4444", Label: "Weak"}
}

// Passed lists the names of the rules password satisfies.
func Passed(password string) []string {
	var names []string
	for _, rule := range Rules {
		if rule.Match(password) {
			names = append(names, rule.Name)
		}
	}
	return names
}

func minLength(n int) func(string) bool {
	return func(s string) bool { return utf8.RuneCountInString(s) >= n }
}

func containsFunc(pred func(rune) bool) func(string) bool {
	return func(s string) bool {
		for _, r := range s {
			if pred(r) {
				return true
			}
		}
		return false
	}
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
