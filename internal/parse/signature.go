package parse

import (
	"fmt"
	"regexp"
)

// base58 excludes 0, O, I and l.
const base58Class = `[1-9A-HJ-NP-Za-km-z]`

// MinSignatureLen is the shortest base58 run treated as an unlabeled signature.
const MinSignatureLen = 44

var (
	labeledSignaturePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i:signature):\s*(` + base58Class + `+)`),
		regexp.MustCompile(`(?i:transaction signature):\s*(` + base58Class + `+)`),
		regexp.MustCompile(`(?i:signature):\s*(` + base58Class + `+)`),
	}
	bareSignaturePattern = regexp.MustCompile(fmt.Sprintf(`(%s{%d,})`, base58Class, MinSignatureLen))
)

// SignatureMatchers is the priority list used by Signature.
var SignatureMatchers = []Matcher{
	{Name: "labeled", Match: matchLabeledSignature},
	{Name: "bare_run", Match: matchBareSignature},
}

// Signature returns the transaction signature printed by `spl-token transfer`,
// or "" when the output contains none. A missing signature is not an error.
func Signature(output string) string {
	v, _, _ := First(output, SignatureMatchers)
	return v
}

func matchLabeledSignature(output string) (string, bool) {
	for _, re := range labeledSignaturePatterns {
		if m := re.FindStringSubmatch(output); m != nil {
			return m[1], true
		}
	}
	return "", false
}

func matchBareSignature(output string) (string, bool) {
	m := bareSignaturePattern.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return m[1], true
}
