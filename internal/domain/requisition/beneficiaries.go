package requisition

// BeneficiaryOther is the manual-entry escape hatch: the requester must
// then supply account name, number and bank themselves.
const BeneficiaryOther = "Other (Manually Enter Details)"

type BeneficiaryAccount struct {
	AccountName string
	AccountNo   string
	Bank        string
}

// Beneficiaries is the standing vendor catalog. Selecting a catalog
// vendor snapshots its account details onto the requisition.
var Beneficiaries = map[string]BeneficiaryAccount{
	"Bestway Engineering Services Ltd": {AccountName: "Benjamin", AccountNo: "1234567890", Bank: "GTB"},
	"Alpha Link Technical Services":    {AccountName: "Oladele", AccountNo: "2345678900", Bank: "Access Bank"},
	"AFLAC COM SPECs":                  {AccountName: "Fasco", AccountNo: "1234567890", Bank: "Opay"},
	"Emmafem Resources Nig. Ent.":      {AccountName: "Radius", AccountNo: "2345678901", Bank: "UBA"},
	"Neptune Global Services":          {AccountName: "Folashade", AccountNo: "12345678911", Bank: "Union Bank"},
}

// LookupBeneficiary returns the catalog account for name, or ok=false for
// unknown vendors (including the manual-entry option).
func LookupBeneficiary(name string) (BeneficiaryAccount, bool) {
	acct, ok := Beneficiaries[name]
	return acct, ok
}
