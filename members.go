// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/helixdoc

package helixdoc

// EventDispatchClass is the only class whose own Subscribe/Unsubscribe
// declarations are rendered as regular functions.
const EventDispatchClass = "Events"

const (
	subscribeFunction   = "Subscribe"
	unsubscribeFunction = "Unsubscribe"
)

// operatorTokens maps raw metamethod keys to annotation operator tokens.
var operatorTokens = map[string]string{
	"__unm":    "unm",
	"__bnot":   "bnot",
	"__len":    "len",
	"__add":    "add",
	"__sub":    "sub",
	"__mul":    "mul",
	"__div":    "div",
	"__mod":    "mod",
	"__pow":    "pow",
	"__idiv":   "idiv",
	"__band":   "band",
	"__bor":    "bor",
	"__bxor":   "bxor",
	"__shl":    "shl",
	"__shr":    "shr",
	"__concat": "concat",
	"__call":   "call",
}

// OperatorToken returns the operator token for a raw metamethod key.
// Keys outside the fixed table report false and are not rendered.
func OperatorToken(raw string) (string, bool) {
	token, ok := operatorTokens[raw]
	return token, ok
}

// IsSubscriptionFunction reports whether name is Subscribe or Unsubscribe.
func IsSubscriptionFunction(name string) bool {
	return name == subscribeFunction || name == unsubscribeFunction
}

// RenderableFunctions drops Subscribe/Unsubscribe declarations from fns
// unless cls is the event dispatch class. The input slice is not modified.
func RenderableFunctions(cls *Class, fns []Function) []Function {
	if len(fns) == 0 {
		return nil
	}

	out := make([]Function, 0, len(fns))
	for _, fn := range fns {
		if IsSubscriptionFunction(fn.Name) && cls.Name != EventDispatchClass {
			continue
		}

		out = append(out, fn)
	}

	return out
}

// Subscription is the synthesized Subscribe/Unsubscribe surface of a class.
type Subscription struct {
	Class  string
	Static bool
	Events []Event
}

// Empty reports whether no subscription surface should be rendered.
func (s Subscription) Empty() bool {
	return len(s.Events) == 0
}

// SubscriptionFor resolves the subscription surface of cls from its own and
// inherited events.
func SubscriptionFor(classes ClassTable, cls *Class) (Subscription, error) {
	events, err := ResolveEvents(classes, cls)
	if err != nil {
		return Subscription{}, err
	}

	return Subscription{
		Class:  cls.Name,
		Static: cls.StaticClass,
		Events: events,
	}, nil
}
