package cards

// dashboardPaths maps a category to its web console path segment. Categories
// absent from the table yield no link.
var dashboardPaths = map[Category]string{
	CategoryLicense:     "licenses",
	CategoryMachine:     "machines",
	CategoryUser:        "users",
	CategoryProduct:     "products",
	CategoryRelease:     "releases",
	CategoryPolicy:      "policies",
	CategoryToken:       "tokens",
	CategoryGroup:       "groups",
	CategoryEntitlement: "entitlements",
	CategoryComponent:   "components",
	CategoryProcess:     "processes",
}

// BuildLink derives the console deep link for an object. It fails closed: a
// partial link is never emitted when either id is unavailable. The account
// category targets the account root and ignores the object id.
func BuildLink(baseURL string, category Category, objectID, accountID string) (string, bool) {
	if accountID == "" {
		return "", false
	}
	if category == CategoryAccount {
		return AccountLink(baseURL, accountID)
	}
	if objectID == "" {
		return "", false
	}
	segment, ok := dashboardPaths[category]
	if !ok {
		return "", false
	}
	return baseURL + "/accounts/" + accountID + "/" + segment + "/" + objectID, true
}

// AccountLink derives the console link for an account root.
func AccountLink(baseURL, accountID string) (string, bool) {
	if accountID == "" {
		return "", false
	}
	return baseURL + "/accounts/" + accountID, true
}
