package sharedeval

import (
	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/wire"
)

// ExportGetF exposes getF to the external test package so specs can read a
// wire's actual share value instead of only asserting its handle is
// non-empty.
func ExportGetF(e *Evaluator, h wire.Handle) curve.F {
	return e.getF(h)
}
