package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"

	"nzoo_immo/config"
	"nzoo_immo/model"
)

// CinetPay est le client de paiement hébergé (mobile money et carte).
// Même principe que tout agrégateur à checkout externe: on construit une URL
// signée, le client paie chez le prestataire, qui rappelle return/notify.
type CinetPay struct {
	Config model.CinetPayConfig
}

func NewCinetPay() *CinetPay {
	return &CinetPay{
		Config: model.CinetPayConfig{
			SiteId:     config.Config("CINETPAY_SITE_ID"),
			ApiKey:     config.Config("CINETPAY_API_KEY"),
			HashSecret: config.Config("CINETPAY_HASH_SECRET"),
			BaseURL:    config.Config("CINETPAY_URL"),
			ReturnURL:  config.Config("APP_URL") + "/payments/return",
			NotifyURL:  config.Config("APP_URL") + "/payments/notify",
		},
	}
}

// BuildPaymentUrl construit l'URL de checkout signée.
func (p *CinetPay) BuildPaymentUrl(req model.PaymentRequest) (string, error) {
	params := url.Values{}
	params.Add("cpm_site_id", p.Config.SiteId)
	params.Add("cpm_apikey", p.Config.ApiKey)
	params.Add("cpm_amount", strconv.FormatFloat(req.Amount, 'f', 2, 64))
	params.Add("cpm_currency", req.Currency)
	params.Add("cpm_payment_method", req.Method)
	params.Add("cpm_trans_id", req.TxnRef)
	params.Add("cpm_trans_date", time.Now().Format("20060102150405"))
	params.Add("cpm_designation", req.Description)
	params.Add("cpm_custom_name", req.CustomerName)
	params.Add("cpm_custom_email", req.CustomerEmail)
	params.Add("cpm_custom_phone", req.CustomerPhone)
	params.Add("cpm_return_url", p.Config.ReturnURL)
	params.Add("cpm_notify_url", p.Config.NotifyURL)

	query := params.Encode()
	hash := p.generateHash(query)
	fullQuery := query + "&cpm_signature=" + hash

	return p.Config.BaseURL + "?" + fullQuery, nil
}

// VerifyCallback valide la signature d'un retour/notify et en extrait l'issue.
func (p *CinetPay) VerifyCallback(query url.Values) model.PaymentResponse {
	signature := query.Get("cpm_signature")
	query.Del("cpm_signature")

	expected := p.generateHash(query.Encode())

	if signature == "" || !hmac.Equal([]byte(signature), []byte(expected)) {
		return model.PaymentResponse{IsSuccess: false, Message: "Invalid signature"}
	}

	if query.Get("cpm_result") == "00" {
		amount, _ := strconv.ParseFloat(query.Get("cpm_amount"), 64)
		return model.PaymentResponse{
			IsSuccess: true,
			TxnRef:    query.Get("cpm_trans_id"),
			Amount:    amount,
			Status:    "PAID",
		}
	}

	return model.PaymentResponse{
		IsSuccess: false,
		TxnRef:    query.Get("cpm_trans_id"),
		Message:   "Payment failed",
	}
}

func (p *CinetPay) generateHash(data string) string {
	h := hmac.New(sha256.New, []byte(p.Config.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
