// Package carapi provides the HTTP client for the cars REST API and the
// vehicle types it returns.
//
// # Overview
//
// The package wraps a single read-only endpoint:
//
//   - GET /v1/cars: list of vehicles matching a model filter, up to a limit
//
// The credential travels in the X-Api-Key header. The model filter is fixed
// per client and set through Options; the result-count limit is set per call
// through Query.
//
// # Client Usage
//
//	client, err := carapi.NewClient(carapi.Options{
//		BaseURL: cfg.APIURL,
//		APIKey:  cfg.APIKey,
//		Model:   cfg.Model,
//	})
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	vehicles, err := client.FetchCars(ctx, carapi.Query{Limit: 50})
//	if err != nil {
//		// err is always carapi.ErrFetchVehicles
//	}
//
// # Error Handling
//
// Transport failures, non-2xx responses and undecodable bodies all return
// ErrFetchVehicles. The detailed cause is written to the standard logger with
// a per-request id (also sent upstream as X-Request-Id) so failures can be
// correlated without leaking transport detail to callers.
//
// There are no retries, no caching and no upstream pagination: the whole
// result set for the requested limit arrives as one batch.
//
// # Efficiency Values
//
// Upstream reports city, highway and combined efficiency inconsistently: as
// JSON numbers, numeric strings, or the Unavailable sentinel on the free tier.
// Efficiency keeps the value as received and exposes Float for numeric use;
// absent and non-numeric values report ok=false.
//
// # Simulated Data
//
// SimulatedVehicles returns a fixed seven-record dataset with real
// coordinates, used for offline work and by the stub API server.
package carapi
