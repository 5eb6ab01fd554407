package models

import "lokalin/utils"

type CheckoutResponse struct {
	utils.OrderSummary
	WhatsAppURL string `json:"whatsapp_url"`
}
