package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleRatesXML = `<?xml version="1.0" encoding="UTF-8"?>
<gesmes:Envelope xmlns:gesmes="http://www.gesmes.org/xml/2002-08-01" xmlns="http://www.ecb.int/vocabulary/2002-08-01/eurofxref">
	<gesmes:subject>Reference rates</gesmes:subject>
	<Cube>
		<Cube time="2026-08-28">
			<Cube currency="USD" rate="1.0842"/>
			<Cube currency="CLP" rate="1034.55"/>
			<Cube currency="JPY" rate="161.23"/>
		</Cube>
	</Cube>
</gesmes:Envelope>`

func newTestECBClient(url string) *ECBClient {
	return &ECBClient{
		httpClient: &http.Client{Timeout: 2 * time.Second},
		url:        url,
		logger:     newTestLogger(),
	}
}

func TestGetDailyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		w.Write([]byte(sampleRatesXML))
	}))
	defer srv.Close()

	client := newTestECBClient(srv.URL)

	rates, err := client.GetDailyRates()
	if err != nil {
		t.Fatalf("GetDailyRates() error = %v", err)
	}

	if rates.Base != "EUR" {
		t.Errorf("Base = %q, want EUR", rates.Base)
	}
	if rates.Date != "2026-08-28" {
		t.Errorf("Date = %q, want 2026-08-28", rates.Date)
	}
	if len(rates.Rates) != 3 {
		t.Errorf("cotizaciones = %d, want 3", len(rates.Rates))
	}
	if got := rates.Rates["CLP"]; got != 1034.55 {
		t.Errorf("Rates[CLP] = %v, want 1034.55", got)
	}
}

func TestGetDailyRates_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestECBClient(srv.URL)
	if _, err := client.GetDailyRates(); err == nil {
		t.Fatal("GetDailyRates() debería fallar con una respuesta 500")
	}
}

func TestParseRatesXML_Empty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"sin cubos", `<Envelope><Cube></Cube></Envelope>`},
		{"xml inválido", `no es xml <<<`},
		{"cubo sin cotizaciones", `<Envelope><Cube><Cube time="2026-08-28"></Cube></Cube></Envelope>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseRatesXML([]byte(tt.body)); err == nil {
				t.Error("parseRatesXML() debería devolver error")
			}
		})
	}
}
