package domain

// Population selects one of the two advance collections. The two sets are
// structurally identical but never mixed.
type Population string

const (
	Debtor   Population = "debtor"
	Creditor Population = "creditor"
)

// IsValid reports whether p is one of the two known populations.
func (p Population) IsValid() bool {
	return p == Debtor || p == Creditor
}

func (p Population) String() string {
	return string(p)
}
