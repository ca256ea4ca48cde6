package config

import (
	"os"
	"strings"
)

type Config struct {
	Port    string
	GinMode string

	LogLevel  string
	LogFormat string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	// Local endpoint, e.g. http://dynamodb:8000
	DynamoDBEndpoint string

	CasesTable        string
	MovementsTable    string
	TransactionsTable string

	MercadoPagoAccessToken string
	// Gateway answers every payment as approved without calling Mercado Pago.
	PaymentGatewayMock bool

	MetricsEnabled bool
}

func Load() *Config {
	return &Config{
		Port:                   getEnv("PORT", "8080"),
		GinMode:                getEnv("GIN_MODE", "debug"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "text"),
		AWSRegion:              getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:     getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		CasesTable:             getEnv("DYNAMODB_CASES_TABLE", "cases"),
		MovementsTable:         getEnv("DYNAMODB_MOVEMENTS_TABLE", "case_movements"),
		TransactionsTable:      getEnv("DYNAMODB_TRANSACTIONS_TABLE", "financial_transactions"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     paymentGatewayMock(),
		MetricsEnabled:         getBool("METRICS_ENABLED", true),
	}
}

// paymentGatewayMock defaults to true when no access token is set.
func paymentGatewayMock() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return parseBool(v)
		}
	}
	return os.Getenv("MERCADOPAGO_ACCESS_TOKEN") == ""
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getBool(k string, d bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return parseBool(v)
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
