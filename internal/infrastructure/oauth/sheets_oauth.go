package oauth

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	sheets "google.golang.org/api/sheets/v4"

	"flightdesk-service/pkg/logger"
)

// SheetsAuth handles service-account authentication for the Sheets API
type SheetsAuth struct {
	config *jwt.Config
	logger logger.Logger
}

// NewSheetsAuth creates a new Sheets auth handler from service-account
// credentials (client email plus PEM private key).
func NewSheetsAuth(serviceAccountEmail, privateKey string, logger logger.Logger) *SheetsAuth {
	config := &jwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	return &SheetsAuth{
		config: config,
		logger: logger,
	}
}

// GetTokenSource returns a token source that can be used with the Sheets API
func (a *SheetsAuth) GetTokenSource(ctx context.Context) oauth2.TokenSource {
	return a.config.TokenSource(ctx)
}
