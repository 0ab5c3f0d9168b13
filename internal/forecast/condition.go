package forecast

import (
	"errors"
	"fmt"
)

var ErrUnknownCondition = errors.New("unknown weather condition")

// Condition is the closed set of sky conditions a forecast can report.
type Condition int

const (
	Sunny Condition = iota
	Cloudy
	PartlyCloudy
	Showers
	Thunderstorms
	Snow
)

var conditionNames = [...]string{
	Sunny:         "Sunny",
	Cloudy:        "Cloudy",
	PartlyCloudy:  "PartlyCloudy",
	Showers:       "Showers",
	Thunderstorms: "Thunderstorms",
	Snow:          "Snow",
}

// Conditions returns every known condition in declaration order.
func Conditions() []Condition {
	return []Condition{Sunny, Cloudy, PartlyCloudy, Showers, Thunderstorms, Snow}
}

func (c Condition) Valid() bool {
	return c >= Sunny && c <= Snow
}

func (c Condition) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return conditionNames[c]
}

// ParseCondition maps a condition name back to its value.
func ParseCondition(name string) (Condition, error) {
	for i, n := range conditionNames {
		if n == name {
			return Condition(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCondition, name)
}

func (c Condition) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCondition, int(c))
	}
	return []byte(conditionNames[c]), nil
}

func (c *Condition) UnmarshalText(text []byte) error {
	parsed, err := ParseCondition(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
