package extractor

import (
	"strings"

	"github.com/mintbomb27/cc-wrapped/extractor/axis"
	"github.com/mintbomb27/cc-wrapped/extractor/common"
	"github.com/mintbomb27/cc-wrapped/extractor/generic"
	"github.com/mintbomb27/cc-wrapped/extractor/hdfc"
)

// Strategy is the uniform contract every issuer layout implements. CanHandle
// is a cheap structural test and must not fail on malformed input; Extract
// assumes CanHandle passed but still skips, rather than aborts on, malformed
// rows.
type Strategy interface {
	Name() string
	CanHandle(table common.Table) bool
	Extract(table common.Table) []common.RawTransaction
}

// IssuerOther is the generic issuer code carried by cards whose layout is
// unknown; it supplies no selection hint.
const IssuerOther = "other"

// strategies is the registry, in fixed priority order. Auto-detection walks
// it front to back.
var strategies = []Strategy{
	hdfc.New(),
	axis.New(),
	generic.New(),
}

// ForTable picks the strategy for a table. A non-empty issuer hint naming a
// registered strategy is tried first, but only used when its CanHandle
// passes; otherwise the registry is walked in declared order. Returns nil
// when no strategy applies.
func ForTable(table common.Table, issuer string) Strategy {
	issuer = strings.ToLower(strings.TrimSpace(issuer))
	if issuer != "" && issuer != IssuerOther {
		for _, s := range strategies {
			if s.Name() == issuer && s.CanHandle(table) {
				return s
			}
		}
	}

	for _, s := range strategies {
		if s.CanHandle(table) {
			return s
		}
	}

	return nil
}
