package flows

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"shift-tracker/internal/model"
	"shift-tracker/pkg/clock"
)

// ParseMoney reads a non-negative amount such as "120", "$1,204.50" or "12,5".
func ParseMoney(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	switch {
	case strings.Count(s, ",") == 1 && !strings.Contains(s, ".") && len(s)-strings.Index(s, ",") <= 3:
		s = strings.Replace(s, ",", ".", 1)
	default:
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not an amount", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount cannot be negative")
	}
	return v, nil
}

// ParseTime accepts "18:30", "1830" and "7:05", normalised to HH:MM.
func ParseTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && !strings.Contains(s, ":") {
		s = s[:2] + ":" + s[2:]
	}
	if len(s) == 4 && s[1] == ':' {
		s = "0" + s
	}
	if !clock.Valid(s) {
		return "", fmt.Errorf("%q is not a time like 18:30", s)
	}
	return s, nil
}

// ParseRange reads "18:00-02:00".
func ParseRange(s string) (start, end string, err error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return "", "", fmt.Errorf("%q is not a range like 18:00-02:00", strings.TrimSpace(s))
	}
	if start, err = ParseTime(from); err != nil {
		return "", "", err
	}
	if end, err = ParseTime(to); err != nil {
		return "", "", err
	}
	return start, end, nil
}

// ParseTags splits "busy, patio, -slow" into tags to add and tags to remove.
func ParseTags(s string) (add, remove []string) {
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		switch {
		case t == "", t == "-":
		case strings.HasPrefix(t, "-"):
			remove = append(remove, strings.TrimSpace(t[1:]))
		default:
			add = append(add, t)
		}
	}
	return add, remove
}

// ParseCoworker reads "Name; Position; 18:00-00:00". Only the name is
// required.
func ParseCoworker(s string) (model.Coworker, error) {
	parts := splitFields(s)
	if len(parts) == 0 || parts[0] == "" {
		return model.Coworker{}, fmt.Errorf("coworker needs a name")
	}
	c := model.Coworker{Name: parts[0]}
	if len(parts) > 1 {
		c.Position = parts[1]
	}
	if len(parts) > 2 && parts[2] != "" {
		start, end, err := ParseRange(parts[2])
		if err != nil {
			return model.Coworker{}, err
		}
		c.StartTime, c.EndTime = start, end
	}
	return c, nil
}

// ParseParty reads "Name; Type; Details; 19:00-23:00; Jo, Sam". Only the name
// is required.
func ParseParty(s string) (model.Party, error) {
	parts := splitFields(s)
	if len(parts) == 0 || parts[0] == "" {
		return model.Party{}, fmt.Errorf("party needs a name")
	}
	p := model.Party{Name: parts[0]}
	if len(parts) > 1 {
		p.Type = parts[1]
	}
	if len(parts) > 2 {
		p.Details = parts[2]
	}
	if len(parts) > 3 && parts[3] != "" {
		start, end, err := ParseRange(parts[3])
		if err != nil {
			return model.Party{}, err
		}
		p.StartTime, p.EndTime = start, end
	}
	if len(parts) > 4 {
		for _, name := range strings.Split(parts[4], ",") {
			if name = strings.TrimSpace(name); name != "" {
				p.Bartenders = append(p.Bartenders, name)
			}
		}
	}
	return p, nil
}

func splitFields(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
