package domain

// Link maps a short identifier to its redirect target.
type Link struct {
	ID        string `json:"id"`
	TargetURL string `json:"targetUrl"`
}

// LinkTarget is the request body for create and update.
type LinkTarget struct {
	TargetURL string `json:"targetUrl"`
}

// ClickEvent records one resolved redirect. Referer and UserAgent are nil
// when the corresponding header was absent on the request.
type ClickEvent struct {
	LinkID    string
	Referer   *string
	UserAgent *string
}

// CountedLinkStatistic is one (referer, user agent) group of click events
// for a link, with the number of events in the group.
type CountedLinkStatistic struct {
	Amount    int64   `json:"amount"`
	Referer   *string `json:"referer"`
	UserAgent *string `json:"userAgent"`
}

// Settings holds the single provisioned credential row.
type Settings struct {
	ID                    string
	EncryptedGlobalAPIKey string
}
