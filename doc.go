// Package restkit provides a declarative HTTP endpoint pipeline: describe an
// endpoint once (method, path template, parameter and header bindings, body
// and response codecs), then for each logical call assemble a concrete
// request, authenticate it, send it, classify the outcome, and transparently
// retry once credentials have been refreshed.
//
// The root package holds the shared vocabulary: the error taxonomy, the
// Transport and codec contracts, the Environment, and the default net/http
// transport. Subpackages build the pipeline on top of it:
//
//   - endpoint: endpoint definitions, path templates, bindings, assembly
//   - codec: body encoders and response/error decoders (JSON, raw, multipart)
//   - auth: authentication methods, including a coalescing rotating-token pair
//   - client: the delivery coordinator with typed generic call helpers
//   - logger: zerolog-backed structured logging
//
// # Basic Usage
//
//	type getUser struct {
//	    UserID string
//	}
//
//	var getUserEndpoint = &endpoint.Definition[getUser]{
//	    Method: http.MethodGet,
//	    Path: endpoint.Root[getUser]().
//	        Lit("user").
//	        Bind(func(r getUser) any { return r.UserID }).
//	        Lit("profile"),
//	}
//
//	c, err := client.New(client.Config{
//	    BaseURL: "https://api.example.com",
//	    Auth:    auth.NewRotatingToken(refreshFn),
//	})
//
//	profile, err := client.Call[getUser, Profile](ctx, c, getUserEndpoint, getUser{UserID: "42"})
package restkit
