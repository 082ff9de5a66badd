// Package endpoint declares HTTP endpoints and assembles requests from them.
//
// A Definition is created once per endpoint type and never mutated: it holds
// the method, a path Template, parameter and header bindings, and the codecs
// used for the body and the response. Per-call data lives in the caller's own
// request-instance type R; bindings capture accessors func(R) any at
// declaration time, so a definition stays statically typed without
// reflection.
//
//	type listRepos struct {
//	    Org     string
//	    Page    *int
//	    Private bool
//	}
//
//	var listReposEndpoint = &endpoint.Definition[listRepos]{
//	    Method: http.MethodGet,
//	    Path: endpoint.Root[listRepos]().
//	        Lit("orgs").
//	        Bind(func(r listRepos) any { return r.Org }).
//	        Lit("repos"),
//	    Parameters: []endpoint.Parameter[listRepos]{
//	        endpoint.Query("page", func(r listRepos) any { return r.Page }),
//	        endpoint.QueryLit[listRepos]("per_page", "50"),
//	    },
//	}
package endpoint
