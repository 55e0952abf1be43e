package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/config"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/domain"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier checks a Google id token against the tokeninfo endpoint and
// extracts the verified email/name/avatar triple.
type GoogleVerifier struct {
	clientID string
	client   *http.Client
}

func NewGoogleVerifier(conf *config.Auth) *GoogleVerifier {
	return &GoogleVerifier{
		clientID: conf.GoogleClientID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenInfoResponse struct {
	Audience      string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*port.GoogleClaims, error) {
	requestURL := tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("error on tokeninfo request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request error: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrGoogleTokenInvalid
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("error on tokeninfo decode: %w", err)
	}

	// The token must be issued for this app, to a verified address.
	if info.Audience != g.clientID || info.EmailVerified != "true" || info.Email == "" {
		return nil, domain.ErrGoogleTokenInvalid
	}

	return &port.GoogleClaims{
		Email:  info.Email,
		Name:   info.Name,
		Avatar: info.Picture,
	}, nil
}
