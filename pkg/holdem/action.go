package holdem

import (
	"encoding/json"
	"fmt"
)

// Action is an action a seat can take on its turn
type Action int

// constants for Action
const (
	ActionFold Action = iota
	ActionCheck
	ActionCall
	ActionRaise
)

func (a Action) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionRaise:
		return "raise"
	}

	return ""
}

// MarshalJSON encodes JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// ActionFromString parses the wire name of an action
func ActionFromString(s string) (Action, error) {
	switch s {
	case "fold":
		return ActionFold, nil
	case "check":
		return ActionCheck, nil
	case "call":
		return ActionCall, nil
	case "raise":
		return ActionRaise, nil
	}

	return 0, fmt.Errorf("%s is not a valid action", s)
}
