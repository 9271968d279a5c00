package cards

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Fact is a labeled value surfaced in the notification body.
type Fact struct {
	Label string
	Value string
}

// notAvailable is the sentinel renderers return for missing or unusable
// values. Facts carrying it are filtered out before rendering.
const notAvailable = "N/A"

const secretPrefixLen = 8

type extractor func(attrs map[string]any) []Fact

var extractorsByCategory = map[Category]extractor{
	CategoryLicense: extractLicenseFacts,
	CategoryUser:    extractUserFacts,
	CategoryMachine: extractMachineFacts,
	CategoryAccount: extractAccountFacts,
	CategoryProduct: extractProductFacts,
	CategoryRelease: extractReleaseFacts,
}

// Extract produces the ordered fact list for a category's attribute bag.
// Categories without a specialized extractor fall back to the generic field
// list. Facts whose value would be empty or the N/A sentinel are dropped.
func Extract(category Category, attrs map[string]any) []Fact {
	pick := extractorsByCategory[category]
	if pick == nil {
		pick = extractGenericFacts
	}
	return filterFacts(pick(attrs))
}

func extractLicenseFacts(attrs map[string]any) []Fact {
	return []Fact{
		{Label: "Key", Value: secretValue(attrs, "key")},
		{Label: "Status", Value: stringValue(attrs, "status")},
		{Label: "Expiry", Value: timeValue(attrs, "expiry")},
		{Label: "Max Machines", Value: numberValue(attrs, "maxMachines", "Unlimited")},
		{Label: "Uses", Value: numberValue(attrs, "uses", "0")},
		{Label: "Max Uses", Value: numberValue(attrs, "maxUses", "Unlimited")},
		{Label: "Protected", Value: boolValue(attrs, "protected")},
		{Label: "Suspended", Value: boolValue(attrs, "suspended")},
		{Label: "Last Validated", Value: timeValue(attrs, "lastValidated")},
		{Label: "Created", Value: timeValue(attrs, "created")},
	}
}

func extractUserFacts(attrs map[string]any) []Fact {
	return []Fact{
		{Label: "Email", Value: stringValue(attrs, "email")},
		{Label: "Name", Value: fullName(attrs)},
		{Label: "Status", Value: stringValue(attrs, "status")},
		{Label: "Role", Value: stringValue(attrs, "role")},
		{Label: "Created", Value: timeValue(attrs, "created")},
	}
}

func extractMachineFacts(attrs map[string]any) []Fact {
	return []Fact{
		{Label: "Fingerprint", Value: stringValue(attrs, "fingerprint")},
		{Label: "Name", Value: stringValue(attrs, "name")},
		{Label: "Platform", Value: stringValue(attrs, "platform")},
		{Label: "Hostname", Value: stringValue(attrs, "hostname")},
		{Label: "IP", Value: stringValue(attrs, "ip")},
		{Label: "Cores", Value: numberValue(attrs, "cores", notAvailable)},
		{Label: "Require Heartbeat", Value: boolValue(attrs, "requireHeartbeat")},
		{Label: "Last Heartbeat", Value: timeValue(attrs, "lastHeartbeat")},
		{Label: "Created", Value: timeValue(attrs, "created")},
	}
}

func extractAccountFacts(attrs map[string]any) []Fact {
	return []Fact{
		{Label: "Name", Value: stringValue(attrs, "name")},
		{Label: "Slug", Value: stringValue(attrs, "slug")},
		{Label: "Status", Value: stringValue(attrs, "status")},
		{Label: "Plan", Value: stringValue(attrs, "plan")},
		{Label: "Created", Value: timeValue(attrs, "created")},
	}
}

func extractProductFacts(attrs map[string]any) []Fact {
	return []Fact{
		{Label: "Name", Value: stringValue(attrs, "name")},
		{Label: "Distribution Strategy", Value: stringValue(attrs, "distributionStrategy")},
		{Label: "URL", Value: stringValue(attrs, "url")},
		{Label: "Created", Value: timeValue(attrs, "created")},
	}
}

func extractReleaseFacts(attrs map[string]any) []Fact {
	return []Fact{
		{Label: "Name", Value: stringValue(attrs, "name")},
		{Label: "Version", Value: stringValue(attrs, "version")},
		{Label: "Channel", Value: stringValue(attrs, "channel")},
		{Label: "Status", Value: stringValue(attrs, "status")},
		{Label: "Tag", Value: stringValue(attrs, "tag")},
		{Label: "Created", Value: timeValue(attrs, "created")},
	}
}

func extractGenericFacts(attrs map[string]any) []Fact {
	return []Fact{
		{Label: "Name", Value: stringValue(attrs, "name")},
		{Label: "Status", Value: stringValue(attrs, "status")},
		{Label: "Created", Value: timeValue(attrs, "created")},
		{Label: "Updated", Value: timeValue(attrs, "updated")},
	}
}

func filterFacts(facts []Fact) []Fact {
	out := make([]Fact, 0, len(facts))
	for _, fact := range facts {
		if fact.Value == "" || fact.Value == notAvailable {
			continue
		}
		out = append(out, fact)
	}
	return out
}

func stringValue(attrs map[string]any, key string) string {
	if attrs == nil {
		return notAvailable
	}
	value, ok := attrs[key].(string)
	if !ok || value == "" {
		return notAvailable
	}
	return value
}

// secretValue truncates secret-like tokens to a short prefix. The full value
// never reaches the rendered card: tokens at or under the prefix length are
// cut to half their characters so the whole secret is never shown.
func secretValue(attrs map[string]any, key string) string {
	value := stringValue(attrs, key)
	if value == notAvailable {
		return value
	}
	prefix := secretPrefixLen
	if len(value) <= secretPrefixLen {
		prefix = len(value) / 2
	}
	return value[:prefix] + "…"
}

func timeValue(attrs map[string]any, key string) string {
	if attrs == nil {
		return notAvailable
	}
	raw, ok := attrs[key].(string)
	if !ok || raw == "" {
		return notAvailable
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Upstream occasionally sends already-formatted dates; pass through.
		return raw
	}
	return FormatTimestamp(parsed)
}

// numberValue renders numeric attributes, substituting a domain default when
// the field is absent: a missing limit means "Unlimited", a missing usage
// count means "0".
func numberValue(attrs map[string]any, key string, missing string) string {
	if attrs == nil {
		return missing
	}
	switch value := attrs[key].(type) {
	case float64:
		if value == math.Trunc(value) {
			return strconv.FormatInt(int64(value), 10)
		}
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case string:
		if value == "" {
			return missing
		}
		return value
	case nil:
		return missing
	default:
		return fmt.Sprintf("%v", value)
	}
}

func boolValue(attrs map[string]any, key string) string {
	if attrs == nil {
		return notAvailable
	}
	value, ok := attrs[key].(bool)
	if !ok {
		return notAvailable
	}
	if value {
		return "Yes"
	}
	return "No"
}

func fullName(attrs map[string]any) string {
	first := stringValue(attrs, "firstName")
	last := stringValue(attrs, "lastName")
	switch {
	case first != notAvailable && last != notAvailable:
		return first + " " + last
	case first != notAvailable:
		return first
	case last != notAvailable:
		return last
	default:
		return notAvailable
	}
}
