// Package client delivers logical calls declared as endpoint definitions:
// it assembles a request, authenticates it, sends it over the transport,
// classifies the outcome, and retries once after refreshing credentials
// when the authentication method asks for it.
//
//	c, err := client.New(client.Config{
//	    BaseURL: "https://api.example.com",
//	    Auth:    auth.NewRotatingToken(refreshFn),
//	})
//
//	user, err := client.Call[getUser, User](ctx, c, getUserEndpoint, getUser{UserID: "42"})
package client
