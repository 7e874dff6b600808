package flag

import (
	"fmt"
	"strings"
)

// StringEnumFlag implements flag.Value. It only accepts values
// from the given set of allowed strings.
type StringEnumFlag struct {
	allowed []string
	value   string
}

func NewStringEnumFlag(allowed []string, defaultValue string) *StringEnumFlag {
	return &StringEnumFlag{allowed, defaultValue}
}

func (flag *StringEnumFlag) Value() string {
	return flag.value
}

func (flag *StringEnumFlag) String() string {
	return flag.value
}

func (flag *StringEnumFlag) Set(value string) error {
	for _, allowed := range flag.allowed {
		if value == allowed {
			flag.value = value
			return nil
		}
	}
	return fmt.Errorf("invalid value: %v (allowed: %v)",
		value, strings.Join(flag.allowed, "|"))
}
