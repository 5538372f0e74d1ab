// Package rest provides a base-URL REST client built on the httpclient executor.
//
// Every call builds a fresh executor with JSON defaults overlaid by the
// client's own headers and credentials:
//
//	client := rest.New("https://jira.example.com/",
//	    rest.WithAuth(httpclient.BasicAuth("user", "token")),
//	    rest.WithHeaders(map[string]string{"X-Request-Source": "ci"}),
//	)
//
//	body, err := client.Get(ctx, "rest/api/2/myself")
//	created, err := client.Post(ctx, "rest/api/2/issue", newIssue)
//	attached, err := client.UploadFile(ctx, "build.log", "rest/api/2/issue/ABC-1/attachments")
//
// Relative URLs are appended to the base URL verbatim; no escaping or slash
// normalization is done.
//
// Declarative endpoints from the api package are dispatched with Perform:
//
//	issue, err := rest.PerformDecoded(ctx, client, api.Empty{}, getIssue)
package rest
