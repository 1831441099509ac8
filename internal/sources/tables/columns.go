// Package tables binds the customer-facing table shapes to the pipeline's
// typed records: which columns exist, which are required, and how rows
// decode into domain structs and back.
package tables

// Input column names as they appear in customer exports.
const (
	ColPatronID       = "Patron ID"
	ColFirstName      = "First Name"
	ColLastName       = "Last Name"
	ColCompany        = "Company"
	ColDateEntered    = "Date Entered"
	ColSalutation     = "Salutation"
	ColPrimaryEmail   = "Primary Email"
	ColJobTitle       = "Title"
	ColTags           = "Tags"
	ColEmail          = "Email"
	ColDonationAmount = "Donation Amount"
	ColDonationDate   = "Donation Date"
	ColStatus         = "Status"
)

// Output column names in the canonical constituent import file.
const (
	ColCBConstituentID    = "CB Constituent ID"
	ColCBConstituentType  = "CB Constituent Type"
	ColCBFirstName        = "CB First Name"
	ColCBLastName         = "CB Last Name"
	ColCBCompanyName      = "CB Company Name"
	ColCBCreatedAt        = "CB Created At"
	ColCBEmail1           = "CB Email 1 (Standardized)"
	ColCBEmail2           = "CB Email 2 (Standardized)"
	ColCBTitle            = "CB Title"
	ColCBTags             = "CB Tags"
	ColCBBackground       = "CB Background Information"
	ColCBLifetimeAmount   = "CB Lifetime Donation Amount"
	ColCBMostRecentDate   = "CB Most Recent Donation Date"
	ColCBMostRecentAmount = "CB Most Recent Donation Amount"
)

// QA and tag report column names.
const (
	ColIssueCode    = "Issue Code"
	ColIssueMessage = "Message"
	ColCBTagName    = "CB Tag Name"
	ColCBTagCount   = "CB Tag Count"
)

// ConstituentColumns returns the canonical output header in order.
func ConstituentColumns() []string {
	return []string{
		ColCBConstituentID,
		ColCBConstituentType,
		ColCBFirstName,
		ColCBLastName,
		ColCBCompanyName,
		ColCBCreatedAt,
		ColCBEmail1,
		ColCBEmail2,
		ColCBTitle,
		ColCBTags,
		ColCBBackground,
		ColCBLifetimeAmount,
		ColCBMostRecentDate,
		ColCBMostRecentAmount,
	}
}

// QAColumns returns the QA report header in order.
func QAColumns() []string {
	return []string{ColCBConstituentID, ColIssueCode, ColIssueMessage}
}

// TagColumns returns the tag report header in order.
func TagColumns() []string {
	return []string{ColCBTagName, ColCBTagCount}
}
