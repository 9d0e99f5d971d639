package parse

import (
	"regexp"
	"strings"
)

const balanceUnit = "SOL"

var numberPattern = regexp.MustCompile(`(\d+\.\d+|\d+)`)

// BalanceMatchers is the priority list used by Balance.
var BalanceMatchers = []Matcher{
	{Name: "unit_line", Match: matchUnitLine},
	{Name: "first_number", Match: matchFirstNumber},
}

// Balance returns the balance printed by `solana balance`, verbatim, e.g. "1.23" from "1.23 SOL".
func Balance(output string) (string, error) {
	if v, _, ok := First(output, BalanceMatchers); ok {
		return v, nil
	}
	return "", &Error{What: "balance", Raw: output}
}

// matchUnitLine takes the leading token of the first line ending in the unit when that token is a plain number.
func matchUnitLine(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasSuffix(line, balanceUnit) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 && isDecimal(fields[0]) {
			return fields[0], true
		}
	}
	return "", false
}

func matchFirstNumber(output string) (string, bool) {
	m := numberPattern.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isDecimal accepts ASCII digits with at most one decimal point, and at least one digit.
func isDecimal(tok string) bool {
	tok = strings.Replace(tok, ".", "", 1)
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
