package auth

import (
	"context"

	"golang.org/x/oauth2"
)

// OAuth2Refresh adapts an OAuth2 configuration into a RefreshFunc that
// exchanges the stored refresh token at the configured token endpoint.
func OAuth2Refresh(cfg *oauth2.Config) RefreshFunc {
	return func(ctx context.Context, refreshToken string) (TokenPair, error) {
		tok, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken}).Token()
		if err != nil {
			return TokenPair{}, err
		}
		pair := TokenPair{
			AccessToken:  tok.AccessToken,
			RefreshToken: tok.RefreshToken,
		}
		// some endpoints do not rotate the refresh token
		if pair.RefreshToken == "" {
			pair.RefreshToken = refreshToken
		}
		return pair, nil
	}
}
