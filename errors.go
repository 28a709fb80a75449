package quaero

import "github.com/quaero-io/quaero/internal/transport/rest"

// ServiceError is a non-2xx answer from the search service, surfaced
// uninterpreted. Use errors.As to inspect the status code:
//
//	var svcErr *quaero.ServiceError
//	if errors.As(err, &svcErr) && svcErr.StatusCode == 404 { ... }
type ServiceError = rest.ServiceError
