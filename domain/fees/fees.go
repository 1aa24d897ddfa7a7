package fees

import (
	"math"

	"payments-gateway/domain/constants"
	"payments-gateway/utils/errors"
)

// Total applies the installment commission to a base amount in minor units.
// A single installment passes the base through untouched; multi-installment
// payments are surcharged by ratePercent, rounded half-up to the minor unit.
func Total(base int64, installment int, ratePercent float64) (int64, error) {
	if base <= 0 {
		return 0, errors.Validation(constants.MsgErrAmountNotPositive)
	}
	if installment < 1 {
		return 0, errors.Validation(constants.MsgErrInstallmentRange)
	}
	if installment == 1 {
		return base, nil
	}
	// surcharge in integer basis points; float64 cannot represent rates like
	// 1.5% exactly and loses half-up ties (1,00 at 1.5% must price at 1,02)
	ratePermyriad := int64(math.Round(ratePercent * 100))
	return base + (base*ratePermyriad+5000)/10000, nil
}
