package constituents

// Canonical is one reconciled constituent record in the CueBox import
// shape. All fields are already-rendered text: timestamps in the canonical
// layout, amounts as currency strings, tags joined with ", ". Exactly one
// of (FirstName, LastName) or CompanyName is populated, decided by Type.
type Canonical struct {
	ConstituentID    string `json:"constituent_id" yaml:"constituent_id"`
	Type             Type   `json:"type" yaml:"type"`
	FirstName        string `json:"first_name" yaml:"first_name"`
	LastName         string `json:"last_name" yaml:"last_name"`
	CompanyName      string `json:"company_name" yaml:"company_name"`
	CreatedAt        string `json:"created_at" yaml:"created_at"`
	Email1           string `json:"email1" yaml:"email1"`
	Email2           string `json:"email2" yaml:"email2"`
	Title            string `json:"title" yaml:"title"`
	Tags             string `json:"tags" yaml:"tags"`
	Background       string `json:"background" yaml:"background"`
	LifetimeAmount   string `json:"lifetime_amount" yaml:"lifetime_amount"`
	MostRecentDate   string `json:"most_recent_date" yaml:"most_recent_date"`
	MostRecentAmount string `json:"most_recent_amount" yaml:"most_recent_amount"`
}
