package cards

import "strings"

// Color is a 6-hex-digit card accent color, no leading '#'.
type Color string

const (
	ColorDestructive Color = "dc3545"
	ColorWarning     Color = "ffc107"
	ColorPositive    Color = "28a745"
	ColorNeutral     Color = "6c757d"
)

// Category is the coarse domain grouping assigned to an event name.
type Category string

const (
	CategoryLicense      Category = "license"
	CategoryMachine      Category = "machine"
	CategoryUser         Category = "user"
	CategoryAccount      Category = "account"
	CategoryProduct      Category = "product"
	CategoryRelease      Category = "release"
	CategoryPolicy       Category = "policy"
	CategoryToken        Category = "token"
	CategoryGroup        Category = "group"
	CategoryEntitlement  Category = "entitlement"
	CategoryComponent    Category = "component"
	CategoryArtifact     Category = "artifact"
	CategoryPackage      Category = "package"
	CategoryProcess      Category = "process"
	CategorySecondFactor Category = "second-factor"
	CategoryUnknown      Category = "unknown"
)

const unknownIcon = "📡"

// Descriptor ties a category to its icon, base color, and the event names it
// owns. The registry is built once and never mutated; concurrent readers need
// no synchronization.
type Descriptor struct {
	Category  Category
	Icon      string
	BaseColor Color
	Events    []string
}

var registry = []Descriptor{
	{
		Category:  CategoryLicense,
		Icon:      "🔑",
		BaseColor: "0078d7",
		Events: []string{
			"license.created",
			"license.updated",
			"license.deleted",
			"license.renewed",
			"license.revoked",
			"license.reinstated",
			"license.suspended",
			"license.expired",
			"license.expiring-soon",
			"license.checked-in",
			"license.checked-out",
			"license.check-in-overdue",
			"license.check-in-required-soon",
			"license.validation.succeeded",
			"license.validation.failed",
			"license.usage.incremented",
			"license.usage.decremented",
			"license.usage.reset",
			"license.entitlements.attached",
			"license.entitlements.detached",
			"license.policy.updated",
			"license.user.updated",
			"license.group.updated",
		},
	},
	{
		Category:  CategoryMachine,
		Icon:      "🖥️",
		BaseColor: "5c6bc0",
		Events: []string{
			"machine.created",
			"machine.updated",
			"machine.deleted",
			"machine.checked-out",
			"machine.heartbeat.ping",
			"machine.heartbeat.dead",
			"machine.heartbeat.resurrected",
			"machine.group.updated",
			"machine.owner.updated",
		},
	},
	{
		Category:  CategoryUser,
		Icon:      "👤",
		BaseColor: "17a2b8",
		Events: []string{
			"user.created",
			"user.updated",
			"user.deleted",
			"user.banned",
			"user.unbanned",
			"user.password-reset",
			"user.group.updated",
		},
	},
	{
		Category:  CategoryAccount,
		Icon:      "🏢",
		BaseColor: "343a40",
		Events: []string{
			"account.updated",
			"account.billing.updated",
			"account.plan.updated",
			"account.subscription.canceled",
			"account.subscription.paused",
			"account.subscription.renewed",
			"account.subscription.resumed",
		},
	},
	{
		Category:  CategoryProduct,
		Icon:      "📦",
		BaseColor: "6f42c1",
		Events: []string{
			"product.created",
			"product.updated",
			"product.deleted",
		},
	},
	{
		Category:  CategoryRelease,
		Icon:      "🚀",
		BaseColor: "fd7e14",
		Events: []string{
			"release.created",
			"release.updated",
			"release.deleted",
			"release.published",
			"release.yanked",
			"release.package.updated",
			"release.constraints.attached",
			"release.constraints.detached",
		},
	},
	{
		Category:  CategoryPolicy,
		Icon:      "📋",
		BaseColor: "20c997",
		Events: []string{
			"policy.created",
			"policy.updated",
			"policy.deleted",
			"policy.pool.popped",
			"policy.entitlements.attached",
			"policy.entitlements.detached",
		},
	},
	{
		Category:  CategoryToken,
		Icon:      "🎫",
		BaseColor: "6610f2",
		Events: []string{
			"token.generated",
			"token.regenerated",
			"token.revoked",
		},
	},
	{
		Category:  CategoryGroup,
		Icon:      "👥",
		BaseColor: "795548",
		Events: []string{
			"group.created",
			"group.updated",
			"group.deleted",
			"group.owners.attached",
			"group.owners.detached",
		},
	},
	{
		Category:  CategoryEntitlement,
		Icon:      "🎟️",
		BaseColor: "00897b",
		Events: []string{
			"entitlement.created",
			"entitlement.updated",
			"entitlement.deleted",
		},
	},
	{
		Category:  CategoryComponent,
		Icon:      "🧩",
		BaseColor: "607d8b",
		Events: []string{
			"component.created",
			"component.updated",
			"component.deleted",
		},
	},
	{
		Category:  CategoryArtifact,
		Icon:      "📄",
		BaseColor: "8d6e63",
		Events: []string{
			"artifact.created",
			"artifact.updated",
			"artifact.deleted",
			"artifact.uploaded",
			"artifact.downloaded",
		},
	},
	{
		Category:  CategoryPackage,
		Icon:      "🗃️",
		BaseColor: "3f51b5",
		Events: []string{
			"package.created",
			"package.updated",
			"package.deleted",
		},
	},
	{
		Category:  CategoryProcess,
		Icon:      "⚙️",
		BaseColor: "9e9e9e",
		Events: []string{
			"process.created",
			"process.deleted",
			"process.heartbeat.ping",
			"process.heartbeat.dead",
			"process.heartbeat.resurrected",
		},
	},
	{
		Category:  CategorySecondFactor,
		Icon:      "🔐",
		BaseColor: "e83e8c",
		Events: []string{
			"second-factor.created",
			"second-factor.deleted",
			"second-factor.enabled",
			"second-factor.disabled",
		},
	},
}

type overrideRule struct {
	color    Color
	keywords []string
}

// Override tiers are scanned in declaration order and the first keyword hit
// wins, even when an event name contains keywords from two tiers.
var overrideRules = []overrideRule{
	{
		color: ColorDestructive,
		keywords: []string{
			"deleted",
			"expired",
			"revoked",
			"suspended",
			"banned",
			"canceled",
			"dead",
			"failed",
			"yanked",
			"overdue",
		},
	},
	{
		color: ColorWarning,
		keywords: []string{
			"expiring",
			"required-soon",
			"paused",
			"decremented",
		},
	},
	{
		color: ColorPositive,
		keywords: []string{
			"created",
			"renewed",
			"resumed",
			"reinstated",
			"resurrected",
			"succeeded",
			"unbanned",
			"published",
			"checked-in",
			"incremented",
		},
	},
}

// EventMeta is the classification of one event name.
type EventMeta struct {
	Category    Category
	Icon        string
	Color       Color
	DisplayName string
}

var eventIndex = buildEventIndex()

func buildEventIndex() map[string]*Descriptor {
	index := make(map[string]*Descriptor)
	for i := range registry {
		for _, name := range registry[i].Events {
			index[name] = &registry[i]
		}
	}
	return index
}

// Classify resolves an event name to its category, icon, color, and display
// name. Total: names absent from the registry fall into the unknown category
// with a neutral color, and keyword overrides never touch them.
func Classify(eventName string) EventMeta {
	meta := EventMeta{
		Category:    CategoryUnknown,
		Icon:        unknownIcon,
		Color:       ColorNeutral,
		DisplayName: DisplayName(eventName),
	}
	if desc, ok := eventIndex[eventName]; ok {
		meta.Category = desc.Category
		meta.Icon = desc.Icon
		meta.Color = applyColorOverrides(eventName, desc.BaseColor)
	}
	return meta
}

func applyColorOverrides(eventName string, base Color) Color {
	for _, rule := range overrideRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(eventName, keyword) {
				return rule.color
			}
		}
	}
	return base
}

// DisplayName renders a dotted event name as a human-readable title, e.g.
// "license.usage.decremented" becomes "License Usage Decremented".
func DisplayName(eventName string) string {
	words := strings.FieldsFunc(eventName, func(r rune) bool {
		return r == '.' || r == '-'
	})
	for i, word := range words {
		words[i] = titleWord(word)
	}
	return strings.Join(words, " ")
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// Registry exposes the full taxonomy for introspection surfaces.
func Registry() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// KnownEventCount returns how many event names the taxonomy recognizes.
func KnownEventCount() int {
	return len(eventIndex)
}
