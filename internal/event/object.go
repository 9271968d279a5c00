package event

// Object is the licensing-domain entity a webhook event concerns. The
// attribute bag is deliberately loose: upstream payload shapes evolve and
// fields come and go, so readers must stay null-safe instead of assuming a
// rigid record.
type Object struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Attributes    map[string]any          `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships"`
}

// Relationship is a weak pointer from one object to another. It is only used
// for link construction and lookups, never ownership.
type Relationship struct {
	Data *ResourceRef `json:"data"`
}

// ResourceRef identifies the target of a relationship.
type ResourceRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// AccountID returns the id of the owning account, or "" when the object does
// not carry an account relationship.
func (o Object) AccountID() string {
	rel, ok := o.Relationships["account"]
	if !ok || rel.Data == nil {
		return ""
	}
	return rel.Data.ID
}

// IsAccount reports whether the object itself is an account resource.
func (o Object) IsAccount() bool {
	return o.Type == "accounts" || o.Type == "account"
}
