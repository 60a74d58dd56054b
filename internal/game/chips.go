package game

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Chips is a stack size that may be the "infinite" sentinel used by
// simulation requests. Infinite stacks cover any bet and never go all-in;
// they serialize back to "inf" rather than a numeric value.
type Chips struct {
	Amount   int
	Infinite bool
}

// FiniteChips returns a finite stack value
func FiniteChips(n int) Chips {
	return Chips{Amount: n}
}

// InfiniteChips returns the infinite-stack sentinel
func InfiniteChips() Chips {
	return Chips{Infinite: true}
}

func (c Chips) String() string {
	if c.Infinite {
		return "inf"
	}
	return fmt.Sprintf("%d", c.Amount)
}

// MarshalJSON emits the numeric amount, or "inf" for infinite stacks
func (c Chips) MarshalJSON() ([]byte, error) {
	if c.Infinite {
		return json.Marshal("inf")
	}
	return json.Marshal(c.Amount)
}

// UnmarshalJSON accepts a number or the literals "inf"/"infinite"
func (c *Chips) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "inf" || s == "infinite" {
			*c = InfiniteChips()
			return nil
		}
		return fmt.Errorf("invalid stack value %q", s)
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = FiniteChips(int(n))
	return nil
}
