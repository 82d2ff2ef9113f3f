package handler

import (
	"net/url"
	"strings"
	"testing"

	"nzoo_immo/model"
)

func testClient() *CinetPay {
	return &CinetPay{
		Config: model.CinetPayConfig{
			SiteId:     "site-test",
			ApiKey:     "key-test",
			HashSecret: "secret-test",
			BaseURL:    "https://checkout.example.com/pay",
			ReturnURL:  "http://localhost:8002/payments/return",
			NotifyURL:  "http://localhost:8002/payments/notify",
		},
	}
}

func TestBuildPaymentUrl(t *testing.T) {
	p := testClient()

	raw, err := p.BuildPaymentUrl(model.PaymentRequest{
		TxnRef:        "OM_1735689600000",
		Amount:        45,
		Currency:      "USD",
		Method:        "orange_money",
		Description:   "Reservation RES-AB12CD34",
		CustomerName:  "Jean Mavungu",
		CustomerEmail: "jean@example.com",
		CustomerPhone: "+243810000000",
	})
	if err != nil {
		t.Fatalf("erreur inattendue: %v", err)
	}

	if !strings.HasPrefix(raw, "https://checkout.example.com/pay?") {
		t.Fatalf("URL inattendue: %s", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("URL illisible: %v", err)
	}
	q := u.Query()
	if q.Get("cpm_trans_id") != "OM_1735689600000" {
		t.Errorf("cpm_trans_id = %q", q.Get("cpm_trans_id"))
	}
	if q.Get("cpm_amount") != "45.00" {
		t.Errorf("cpm_amount = %q", q.Get("cpm_amount"))
	}
	if q.Get("cpm_signature") == "" {
		t.Error("l'URL doit porter une signature")
	}
}

func TestVerifyCallbackRoundTrip(t *testing.T) {
	p := testClient()

	params := url.Values{}
	params.Add("cpm_trans_id", "VISA_1735689600000")
	params.Add("cpm_amount", "600.00")
	params.Add("cpm_result", "00")
	signed := params.Encode() + "&cpm_signature=" + p.generateHash(params.Encode())

	query, _ := url.ParseQuery(signed)
	resp := p.VerifyCallback(query)
	if !resp.IsSuccess {
		t.Fatalf("callback signé refusé: %s", resp.Message)
	}
	if resp.TxnRef != "VISA_1735689600000" || resp.Amount != 600 || resp.Status != "PAID" {
		t.Errorf("réponse inattendue: %+v", resp)
	}
}

func TestVerifyCallbackBadSignature(t *testing.T) {
	p := testClient()

	params := url.Values{}
	params.Add("cpm_trans_id", "OM_1735689600000")
	params.Add("cpm_result", "00")
	params.Add("cpm_signature", "falsifiee")

	if resp := p.VerifyCallback(params); resp.IsSuccess {
		t.Error("une signature falsifiée doit être refusée")
	}
}

func TestVerifyCallbackFailedResult(t *testing.T) {
	p := testClient()

	params := url.Values{}
	params.Add("cpm_trans_id", "AM_1735689600000")
	params.Add("cpm_result", "05")
	signed := params.Encode() + "&cpm_signature=" + p.generateHash(params.Encode())

	query, _ := url.ParseQuery(signed)
	if resp := p.VerifyCallback(query); resp.IsSuccess {
		t.Error("un résultat non-00 ne doit pas valoir paiement")
	}
}
