package messages

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Placeholder syntax inside message templates:
//
//	{min}                            named parameter substitution
//	{validatedValue}                 the value under validation
//	{printf '%.2f' validatedValue}   printf-style formatting
//	{min > 1 ? 'items' : 'item'}     conditional over parameters
var placeholderRegex = regexp.MustCompile(`\{([^{}]+)\}`)

// ValidatedValueParam is the parameter name under which the validator
// engine exposes the value being validated.
const ValidatedValueParam = "validatedValue"

// Interpolate substitutes placeholders in a template from the parameter
// map. Unknown plain parameters keep their original placeholder so a
// half-configured template stays diagnosable. Interpolate never fails;
// malformed expressions render as their literal placeholder text.
func Interpolate(template string, params map[string]any) string {
	if template == "" || !strings.Contains(template, "{") {
		return template
	}

	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		expr := strings.TrimSpace(match[1 : len(match)-1])

		if strings.HasPrefix(expr, "printf ") {
			if out, ok := evalPrintf(expr, params); ok {
				return out
			}
			return match
		}

		if strings.Contains(expr, "?") {
			if out, ok := evalTernary(expr, params); ok {
				return out
			}
			return match
		}

		if val, ok := params[expr]; ok {
			return formatValue(val)
		}
		return match
	})
}

// evalPrintf handles "printf '<verb>' <param>" expressions.
func evalPrintf(expr string, params map[string]any) (string, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(expr, "printf"))

	verb, rest, ok := takeQuoted(rest)
	if !ok {
		return "", false
	}

	name := strings.TrimSpace(rest)
	val, ok := params[name]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(verb, val), true
}

// evalTernary handles "cond ? branch : branch" expressions. The
// condition is either a bare parameter name tested for truthiness or a
// "name op literal" comparison. Branches are single-quoted literals or
// parameter names.
func evalTernary(expr string, params map[string]any) (string, bool) {
	q := indexOutsideQuotes(expr, '?')
	if q < 0 {
		return "", false
	}
	c := indexOutsideQuotes(expr[q+1:], ':')
	if c < 0 {
		return "", false
	}

	cond := strings.TrimSpace(expr[:q])
	thenBranch := strings.TrimSpace(expr[q+1 : q+1+c])
	elseBranch := strings.TrimSpace(expr[q+1+c+1:])

	branch := elseBranch
	if evalCondition(cond, params) {
		branch = thenBranch
	}
	return evalBranch(branch, params), true
}

func evalCondition(cond string, params map[string]any) bool {
	for _, op := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if idx := strings.Index(cond, op); idx >= 0 {
			left := strings.TrimSpace(cond[:idx])
			right := strings.TrimSpace(cond[idx+len(op):])
			return compare(params[left], right, op)
		}
	}

	// Bare parameter name: truthiness test.
	return isTruthy(params[cond])
}

func compare(left any, rightLiteral, op string) bool {
	right := strings.Trim(rightLiteral, "'")

	lf, lok := numericOf(left)
	rf, rerr := strconv.ParseFloat(right, 64)
	if lok && rerr == nil {
		switch op {
		case "==":
			return lf == rf
		case "!=":
			return lf != rf
		case "<":
			return lf < rf
		case "<=":
			return lf <= rf
		case ">":
			return lf > rf
		case ">=":
			return lf >= rf
		}
		return false
	}

	ls := formatValue(left)
	switch op {
	case "==":
		return ls == right
	case "!=":
		return ls != right
	case "<":
		return ls < right
	case "<=":
		return ls <= right
	case ">":
		return ls > right
	case ">=":
		return ls >= right
	}
	return false
}

func evalBranch(branch string, params map[string]any) string {
	if strings.HasPrefix(branch, "'") && strings.HasSuffix(branch, "'") && len(branch) >= 2 {
		return branch[1 : len(branch)-1]
	}
	if val, ok := params[branch]; ok {
		return formatValue(val)
	}
	return ""
}

func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && !strings.EqualFold(t, "false")
	default:
		if f, ok := numericOf(v); ok {
			return f != 0
		}
		return true
	}
}

func numericOf(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format("2006-01-02")
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// takeQuoted reads a leading single-quoted token and returns the token
// body and the remainder of the input.
func takeQuoted(s string) (string, string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "'") {
		return "", "", false
	}
	end := strings.Index(s[1:], "'")
	if end < 0 {
		return "", "", false
	}
	return s[1 : 1+end], s[2+end:], true
}

func indexOutsideQuotes(s string, c byte) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			inQuote = !inQuote
		case c:
			if !inQuote {
				return i
			}
		}
	}
	return -1
}
