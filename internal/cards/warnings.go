package cards

import "strings"

// Warning is a supplementary alert flagging a critical domain condition.
type Warning struct {
	Title    string
	Subtitle string
	Color    Color
}

type warningRule struct {
	name    string
	matches func(eventName string, attrs map[string]any) bool
	warning Warning
}

func eventContains(fragment string) func(string, map[string]any) bool {
	return func(eventName string, _ map[string]any) bool {
		return strings.Contains(eventName, fragment)
	}
}

// Rules are evaluated top-to-bottom and every matching rule fires: a license
// that is both suspended and expired surfaces both conditions.
var warningRules = []warningRule{
	{
		name:    "license-expired",
		matches: eventContains("license.expired"),
		warning: Warning{
			Title:    "⚠️ License Expired",
			Subtitle: "This license has expired and can no longer be used.",
			Color:    ColorDestructive,
		},
	},
	{
		name:    "license-expiring-soon",
		matches: eventContains("license.expiring-soon"),
		warning: Warning{
			Title:    "⏳ License Expiring Soon",
			Subtitle: "This license will expire shortly. Renew it to avoid interruption.",
			Color:    ColorWarning,
		},
	},
	{
		name: "license-suspended",
		matches: func(eventName string, attrs map[string]any) bool {
			if strings.Contains(eventName, "license.suspended") {
				return true
			}
			if !strings.HasPrefix(eventName, "license.") || attrs == nil {
				return false
			}
			suspended, _ := attrs["suspended"].(bool)
			return suspended
		},
		warning: Warning{
			Title:    "🚫 License Suspended",
			Subtitle: "This license is suspended and will fail validation until reinstated.",
			Color:    ColorDestructive,
		},
	},
	{
		name:    "license-check-in-overdue",
		matches: eventContains("license.check-in-overdue"),
		warning: Warning{
			Title:    "⏰ Check-In Overdue",
			Subtitle: "This license missed its required check-in window.",
			Color:    ColorDestructive,
		},
	},
	{
		name:    "license-validation-failed",
		matches: eventContains("license.validation.failed"),
		warning: Warning{
			Title:    "❌ Validation Failed",
			Subtitle: "A license validation attempt was rejected.",
			Color:    ColorDestructive,
		},
	},
	{
		name:    "machine-heartbeat-dead",
		matches: eventContains("machine.heartbeat.dead"),
		warning: Warning{
			Title:    "💀 Machine Heartbeat Dead",
			Subtitle: "A machine stopped sending heartbeats and was culled.",
			Color:    ColorDestructive,
		},
	},
	{
		name:    "process-heartbeat-dead",
		matches: eventContains("process.heartbeat.dead"),
		warning: Warning{
			Title:    "💀 Process Heartbeat Dead",
			Subtitle: "A process stopped sending heartbeats and was culled.",
			Color:    ColorDestructive,
		},
	},
	{
		name:    "subscription-canceled",
		matches: eventContains("subscription.canceled"),
		warning: Warning{
			Title:    "🚫 Subscription Canceled",
			Subtitle: "The account subscription was canceled.",
			Color:    ColorDestructive,
		},
	},
}

// DetectWarnings returns every warning whose rule matches the event, in rule
// declaration order. Total and order-preserving; may be empty.
func DetectWarnings(eventName string, attrs map[string]any) []Warning {
	var out []Warning
	for _, rule := range warningRules {
		if rule.matches(eventName, attrs) {
			out = append(out, rule.warning)
		}
	}
	return out
}
