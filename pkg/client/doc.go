// Package client posts blockchain information to the remote app API.
//
// A Client is bound to one base URL, resolved once by the caller (usually
// from the environment-keyed API table) and fixed for the client's
// lifetime. Every call is an independent JSON POST, so a Client is safe
// for concurrent use.
//
// # Usage
//
//	c, err := client.New("http://localhost:3000", client.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	resp, err := c.AddBlockchainInformation(ctx, client.Params{
//	    "txHash": "0xabc",
//	    "block":  123,
//	}, bearerToken)
//	if err != nil {
//	    var se *client.StatusError
//	    if errors.As(err, &se) {
//	        // se.StatusCode, se.Body
//	    }
//	    return err
//	}
//
// Failures are never retried. Transport errors, non-2xx responses and
// undecodable bodies are all returned to the caller with the original
// cause reachable through errors.Is and errors.As.
package client
