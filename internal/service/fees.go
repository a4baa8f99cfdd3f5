package service

// FeeBreakdown is the monetary decomposition of a single charge, in
// minor-currency units. TotalAmount is always the sum of the other three.
type FeeBreakdown struct {
	ProductAmount int64
	BaseFee       int64
	DeliveryFee   int64
	TotalAmount   int64
}

// FeeCalculator is pure. The fixed fees are injected at construction so the
// calculator never reads ambient configuration.
type FeeCalculator struct {
	baseFee     int64
	deliveryFee int64
}

func NewFeeCalculator(baseFee, deliveryFee int64) *FeeCalculator {
	return &FeeCalculator{baseFee: baseFee, deliveryFee: deliveryFee}
}

// Breakdown assumes quantity >= 1; the caller validates input.
func (f *FeeCalculator) Breakdown(unitPriceInCents int64, quantity int) FeeBreakdown {
	productAmount := unitPriceInCents * int64(quantity)

	return FeeBreakdown{
		ProductAmount: productAmount,
		BaseFee:       f.baseFee,
		DeliveryFee:   f.deliveryFee,
		TotalAmount:   productAmount + f.baseFee + f.deliveryFee,
	}
}
