package envfile

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	tokenRE = regexp.MustCompile(`^[0-9]+:[A-Za-z0-9_-]{30,}$`)
	emailRE = regexp.MustCompile(`^[A-Za-z0-9_.+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// DefaultRequiredKeys is the canonical key list for the bot deployment env
// file this validator was written for.
var DefaultRequiredKeys = []string{
	"BOT_TOKEN",
	"OWNER_ID",
	"TELEGRAM_TOKEN",
	"TELEGRAM_CHAT_ID",
	"EMAIL_FROM",
	"EMAIL_TO",
	"GROQ_API_KEY",
	"MISTRAL_API_KEY",
	"GEMINI_API_KEY",
	"USE_POWERFUL_SERVERS_ONLY",
	"MAX_GPU_USAGE",
}

// Result describes the outcome of a validation run. Warnings are soft
// findings worth surfacing that should not fail the run.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were discovered.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks the parsed configuration against the canonical rules. A
// nil requiredKeys uses DefaultRequiredKeys.
func Validate(data map[string]string, requiredKeys []string) Result {
	if requiredKeys == nil {
		requiredKeys = DefaultRequiredKeys
	}

	var res Result

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := data[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		res.Errors = append(res.Errors, "missing required keys: "+strings.Join(missing, ", "))
	}

	var empty []string
	for _, key := range requiredKeys {
		if v, ok := data[key]; ok && strings.TrimSpace(v) == "" {
			empty = append(empty, key)
		}
	}
	if len(empty) > 0 {
		sort.Strings(empty)
		res.Errors = append(res.Errors, "empty values for keys: "+strings.Join(empty, ", "))
	}

	for _, key := range []string{"BOT_TOKEN", "TELEGRAM_TOKEN"} {
		if v := data[key]; v != "" && !tokenRE.MatchString(v) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s must match <digits>:<token of 30+ characters>", key))
		}
	}
	for _, key := range []string{"OWNER_ID", "TELEGRAM_CHAT_ID"} {
		if v := data[key]; v != "" && !isDigits(v) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s must contain only digits", key))
		}
	}
	for _, key := range []string{"EMAIL_FROM", "EMAIL_TO"} {
		if v := data[key]; v != "" && !emailRE.MatchString(v) {
			res.Errors = append(res.Errors, fmt.Sprintf("%s contains an invalid address: %s", key, v))
		}
	}

	if v := data["USE_POWERFUL_SERVERS_ONLY"]; v != "" {
		switch strings.ToLower(v) {
		case "true":
		case "false":
			res.Warnings = append(res.Warnings, "keeping USE_POWERFUL_SERVERS_ONLY=true is recommended for sensitive bots")
		default:
			res.Errors = append(res.Errors, "USE_POWERFUL_SERVERS_ONLY must be true or false (any case)")
		}
	}

	if v := data["MAX_GPU_USAGE"]; v != "" {
		f, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			res.Errors = append(res.Errors, "MAX_GPU_USAGE must be a number")
		case f < 0 || f > 1:
			res.Errors = append(res.Errors, "MAX_GPU_USAGE must be within [0.0, 1.0]")
		case f > 0.9:
			res.Warnings = append(res.Warnings, "MAX_GPU_USAGE above 0.9 risks overloading the host")
		}
	}

	return res
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
