package roi

const (
	// AutomatedCostPerInvoice is the per-invoice processing fee once automated.
	AutomatedCostPerInvoice = 0.20
	// AutomatedErrorRate is the residual error rate after automation, in percent.
	AutomatedErrorRate = 0.1
	// MinROIBoostFactor biases the monthly savings upward.
	MinROIBoostFactor = 1.1

	moneyPlaces  = 0
	ratioPlaces  = 1
	percentScale = 100
)
