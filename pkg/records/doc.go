// Package records is the gateway to the Clientes table behind the proxy.
//
// A Client is built from a config.Endpoint, so it can only exist after the
// configuration was loaded:
//
//	endpoint, err := loader.Load(ctx)
//	if err != nil {
//		return err
//	}
//	client, err := records.NewClient(endpoint)
//	list, err := client.List(ctx)
//
// Non-2xx answers come back as *StatusError whose Message is the category
// shown to users; failures reaching the proxy come back as *TransportError
// carrying the URL, base id and table for diagnostics.
package records
