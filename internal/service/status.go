package service

import (
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/pkg/gateway"
)

var gatewayStatusMap = map[gateway.Status]model.TransactionStatus{
	gateway.StatusApproved: model.TransactionStatusApproved,
	gateway.StatusDeclined: model.TransactionStatusDeclined,
	gateway.StatusPending:  model.TransactionStatusPending,
}

// MapGatewayStatus is the single fixed table both the orchestrator and the
// reconciliation sweep use. Anything not explicitly mapped fails closed as
// ERROR.
func MapGatewayStatus(status gateway.Status) model.TransactionStatus {
	if mapped, exists := gatewayStatusMap[status]; exists {
		return mapped
	}

	return model.TransactionStatusError
}
