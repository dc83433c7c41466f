package enum

import "fmt"

// ItemKind distinguishes service lines from product lines in a cart
type ItemKind string

const (
	KindService ItemKind = "service"
	KindProduct ItemKind = "product"
)

func (k ItemKind) String() string {
	return string(k)
}

func (k ItemKind) IsValid() bool {
	return k == KindService || k == KindProduct
}

// ParseItemKind converts a raw string into an ItemKind
func ParseItemKind(s string) (ItemKind, error) {
	k := ItemKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown item kind %q", s)
	}
	return k, nil
}
