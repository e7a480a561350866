// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Payment methods offered at checkout.
const (
	PaymentTMoney        = "T-Money"
	PaymentFlooz         = "Flooz"
	PaymentWave          = "Wave"
	PaymentInternational = "Autre pays"
	PaymentCash          = "Espèces"
)

// PaymentMethod is a checkout payment option with its display label.
type PaymentMethod struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PaymentMethods lists the payment options in display order.
var PaymentMethods = []PaymentMethod{
	{Value: PaymentTMoney, Label: "T-Money (Togo)"},
	{Value: PaymentFlooz, Label: "Flooz (Togo)"},
	{Value: PaymentWave, Label: "Wave"},
	{Value: PaymentInternational, Label: "Hors Togo (International)"},
	{Value: PaymentCash, Label: "Paiement en mains propres"},
}

// IsPaymentMethod reports whether v is a known payment method value.
func IsPaymentMethod(v string) bool {
	for _, m := range PaymentMethods {
		if m.Value == v {
			return true
		}
	}
	return false
}

// OrderItem is the purchasable summary carried into a checkout message.
type OrderItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

// BuyerInfo is what the buyer types into the checkout form.
type BuyerInfo struct {
	LastName      string `json:"lastName"`
	FirstName     string `json:"firstName"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
}
