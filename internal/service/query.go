package service

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/alexiusacademia/gosteam/internal/steam"
)

// ValidationError is a malformed request.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalid(format string, args ...any) error {
	return &ValidationError{fmt.Sprintf(format, args...)}
}

// pointQuery is the query of /v1/state and /v1/region.
type pointQuery struct {
	Pair string  `mapstructure:"pair"`
	A    float64 `mapstructure:"a"`
	B    float64 `mapstructure:"b"`
}

// saturationQuery is the query of /v1/saturation. Exactly one field is set.
type saturationQuery struct {
	T *float64 `mapstructure:"T"`
	P *float64 `mapstructure:"p"`
}

// decodeQuery decodes string query values into out, converting numbers.
// Empty parameters count as absent; unknown and repeated ones are rejected.
func decodeQuery(values url.Values, out any, required ...string) error {
	input := make(map[string]any, len(values))
	for k, v := range values {
		if len(v) != 1 {
			return invalid("parameter %q given %d times", k, len(v))
		}
		if s := strings.TrimSpace(v[0]); s != "" {
			input[k] = s
		}
	}
	for _, k := range required {
		if _, ok := input[k]; !ok {
			return invalid("missing parameter %q", k)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return invalid("bad query: %v", err)
	}
	return nil
}

func parsePoint(values url.Values) (pointQuery, steam.Pair, error) {
	var q pointQuery
	if err := decodeQuery(values, &q, "pair", "a", "b"); err != nil {
		return q, "", err
	}
	pair, err := steam.ParsePair(q.Pair)
	if err != nil {
		return q, "", &ValidationError{err.Error()}
	}
	if !finite(q.A) || !finite(q.B) {
		return q, "", invalid("a and b must be finite numbers")
	}
	return q, pair, nil
}

func parseSaturation(values url.Values) (saturationQuery, error) {
	var q saturationQuery
	if err := decodeQuery(values, &q); err != nil {
		return q, err
	}
	switch {
	case (q.T == nil) == (q.P == nil):
		return q, invalid("give exactly one of T or p")
	case q.T != nil && !finite(*q.T), q.P != nil && !finite(*q.P):
		return q, invalid("T and p must be finite numbers")
	}
	return q, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// cacheKey normalizes a request so equal inputs share an entry.
func cacheKey(endpoint string, parts ...any) string {
	var sb strings.Builder
	sb.WriteString(endpoint)
	for _, p := range parts {
		sb.WriteByte(':')
		switch v := p.(type) {
		case float64:
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		default:
			fmt.Fprint(&sb, v)
		}
	}
	return sb.String()
}
