package lists

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Format renders values as `name = {v1, v2, ..., vn};`.
func Format(name string, values []int) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" = {")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteString("};")
	return b.String()
}

// Lines returns the left and right lists formatted as left_list and right_list.
func (l Lists) Lines() []string {
	return []string{
		Format("left_list", l.Left),
		Format("right_list", l.Right),
	}
}

var errMalformed = errors.New("malformed list")

// ParseFormatted is the inverse of Format.
func ParseFormatted(s string) (string, []int, error) {
	s = strings.TrimSpace(s)
	name, body, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing '='", errMalformed)
	}
	body = strings.TrimSpace(body)
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "};") {
		return "", nil, fmt.Errorf("%w: expected {...};", errMalformed)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "{"), "};")

	var values []int
	if strings.TrimSpace(body) != "" {
		for _, tok := range strings.Split(body, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return "", nil, err
			}
			values = append(values, v)
		}
	}
	return strings.TrimSpace(name), values, nil
}
