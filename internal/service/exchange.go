package service

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/Juan-Zuniga-Codoceo/spendshield/internal/model"
)

// ecbRatesURL publica los tipos de cambio diarios del Banco Central Europeo
const ecbRatesURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

// ECBClient consulta los tipos de cambio diarios del BCE
type ECBClient struct {
	httpClient *http.Client
	url        string
	logger     *logrus.Logger
}

func NewECBClient(logger *logrus.Logger) *ECBClient {
	return &ECBClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		url:    ecbRatesURL,
		logger: logger,
	}
}

// GetDailyRates obtiene los tipos de cambio del día con base EUR
func (c *ECBClient) GetDailyRates() (*model.ExchangeRates, error) {
	c.logger.Info("Consultando tipos de cambio del BCE")

	resp, err := c.httpClient.Get(c.url)
	if err != nil {
		c.logger.WithError(err).Error("Error al consultar el BCE")
		return nil, fmt.Errorf("error al consultar tipos de cambio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("respuesta inesperada del BCE: %s", resp.Status)
	}

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta: %w", err)
	}

	rates, err := parseRatesXML(rawBody)
	if err != nil {
		c.logger.WithError(err).Error("Error al procesar el XML del BCE")
		return nil, err
	}

	c.logger.WithField("count", len(rates.Rates)).Info("Tipos de cambio obtenidos")
	return rates, nil
}

// parseRatesXML extrae fecha y cotizaciones del XML diario del BCE
func parseRatesXML(rawBody []byte) (*model.ExchangeRates, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("error al interpretar el XML: %w", err)
	}

	dayCube := doc.FindElement("//Cube/Cube[@time]")
	if dayCube == nil {
		return nil, errors.New("no se encontraron cotizaciones en la respuesta")
	}

	rates := &model.ExchangeRates{
		Base:  "EUR",
		Date:  dayCube.SelectAttrValue("time", ""),
		Rates: make(map[string]float64),
	}

	for _, cube := range dayCube.FindElements("./Cube") {
		currency := cube.SelectAttrValue("currency", "")
		rateStr := cube.SelectAttrValue("rate", "")
		if currency == "" || rateStr == "" {
			continue
		}

		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil {
			return nil, fmt.Errorf("cotización inválida para %s: %w", currency, err)
		}
		rates.Rates[currency] = rate
	}

	if len(rates.Rates) == 0 {
		return nil, errors.New("no se encontraron cotizaciones en la respuesta")
	}

	return rates, nil
}
