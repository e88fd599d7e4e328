package domain

// RecipientType tags the kind of party on the receiving end of a movement.
type RecipientType string

const (
	RecipientClient   RecipientType = "client"
	RecipientMerchant RecipientType = "merchant"
)

// Recipient is a tagged variant: either a client's ledger account or a
// merchant reference. Exactly one of AccountID and MerchantID is set,
// according to Type.
type Recipient struct {
	Type       RecipientType
	AccountID  string
	MerchantID string
}

// ClientRecipient builds a recipient pointing at a client account.
func ClientRecipient(accountID string) Recipient {
	return Recipient{Type: RecipientClient, AccountID: accountID}
}

// MerchantRecipient builds a recipient pointing at a merchant.
func MerchantRecipient(merchantID string) Recipient {
	return Recipient{Type: RecipientMerchant, MerchantID: merchantID}
}

// Validate checks the exactly-one-side-set invariant.
func (r Recipient) Validate() error {
	switch r.Type {
	case RecipientClient:
		if r.AccountID == "" || r.MerchantID != "" {
			return ErrInvalidRecipient
		}
	case RecipientMerchant:
		if r.MerchantID == "" || r.AccountID != "" {
			return ErrInvalidRecipient
		}
	default:
		return ErrInvalidRecipient
	}
	return nil
}

// MerchantRef is a merchant as resolved by the account directory. Merchants
// do not hold ledger accounts in this system; payments to them are one-sided.
type MerchantRef struct {
	ID   string
	Name string
	Code string
}
